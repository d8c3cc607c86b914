package ciphers

import (
	"crypto/cipher"
	"crypto/des"

	"cipherbench/bench"
)

type desCipher struct{}

func (desCipher) Name() string { return "DES" }

func (desCipher) KeySize() bench.KeySize { return bench.FixedKey(8) }

func (desCipher) New(key bench.Key) (cipher.Block, error) {
	return des.NewCipher(key)
}

type tripleDESCipher struct{}

func (tripleDESCipher) Name() string { return "3DES" }

func (tripleDESCipher) KeySize() bench.KeySize { return bench.FixedKey(24) }

func (tripleDESCipher) New(key bench.Key) (cipher.Block, error) {
	return des.NewTripleDESCipher(key)
}
