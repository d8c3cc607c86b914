package bench

type Key []byte
type Plaintext []byte
type Ciphertext []byte

// EncryptFunc encrypts an arbitrary-length input under one fixed
// (cipher, mode) configuration.
type EncryptFunc func(Plaintext) Ciphertext
