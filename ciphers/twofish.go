package ciphers

import (
	"crypto/cipher"

	"golang.org/x/crypto/twofish"

	"cipherbench/bench"
)

type twofishCipher struct{}

func (twofishCipher) Name() string { return "Twofish" }

func (twofishCipher) KeySize() bench.KeySize { return bench.FixedKey(16) }

func (twofishCipher) New(key bench.Key) (cipher.Block, error) {
	c, err := twofish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c, nil
}
