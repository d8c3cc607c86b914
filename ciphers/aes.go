package ciphers

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"cipherbench/bench"
)

type aesCipher struct {
	bits int
}

func (c aesCipher) Name() string {
	return fmt.Sprintf("AES%d", c.bits)
}

func (c aesCipher) KeySize() bench.KeySize {
	return bench.FixedKey(c.bits / 8)
}

func (c aesCipher) New(key bench.Key) (cipher.Block, error) {
	return aes.NewCipher(key)
}
