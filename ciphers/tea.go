package ciphers

import (
	"crypto/cipher"

	"golang.org/x/crypto/tea"
	"golang.org/x/crypto/xtea"

	"cipherbench/bench"
)

type teaCipher struct{}

func (teaCipher) Name() string { return "TEA" }

func (teaCipher) KeySize() bench.KeySize { return bench.FixedKey(16) }

func (teaCipher) New(key bench.Key) (cipher.Block, error) {
	return tea.NewCipher(key)
}

type xteaCipher struct{}

func (xteaCipher) Name() string { return "XTEA" }

func (xteaCipher) KeySize() bench.KeySize { return bench.FixedKey(16) }

func (xteaCipher) New(key bench.Key) (cipher.Block, error) {
	c, err := xtea.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c, nil
}
