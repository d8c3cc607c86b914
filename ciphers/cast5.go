package ciphers

import (
	"crypto/cipher"

	"golang.org/x/crypto/cast5"

	"cipherbench/bench"
)

type cast5Cipher struct{}

func (cast5Cipher) Name() string { return "CAST5" }

func (cast5Cipher) KeySize() bench.KeySize { return bench.FixedKey(16) }

func (cast5Cipher) New(key bench.Key) (cipher.Block, error) {
	c, err := cast5.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return c, nil
}
