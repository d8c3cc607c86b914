package ciphers

import (
	"crypto/cipher"

	"golang.org/x/crypto/blowfish"

	"cipherbench/bench"
)

type blowfishCipher struct{}

func (blowfishCipher) Name() string { return "Blowfish" }

// Blowfish takes anywhere from 1 to 56 key bytes.
func (blowfishCipher) KeySize() bench.KeySize { return bench.VariableKey() }

func (blowfishCipher) New(key bench.Key) (cipher.Block, error) {
	c, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c, nil
}
