// Package ciphers is the catalog of block ciphers cipherbench knows
// how to benchmark. Each implementation only adapts a crypto library
// constructor to the bench.Cipher capability interface; the benchmark
// core never sees the concrete types.
package ciphers

import "cipherbench/bench"

// All returns the cipher catalog in display order.
func All() []bench.Cipher {
	return []bench.Cipher{
		aesCipher{bits: 128},
		aesCipher{bits: 192},
		aesCipher{bits: 256},
		desCipher{},
		tripleDESCipher{},
		blowfishCipher{},
		twofishCipher{},
		cast5Cipher{},
		teaCipher{},
		xteaCipher{},
	}
}
