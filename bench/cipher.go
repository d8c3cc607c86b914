package bench

import (
	"crypto/cipher"
	"fmt"
)

// defaultVariableKeyBytes is the synthesized key size for ciphers that
// accept a range of key lengths.
const defaultVariableKeyBytes = 16

// KeySize describes a cipher's key requirement: a fixed byte count or
// a variable-length key.
type KeySize struct {
	bytes    int
	variable bool
}

func FixedKey(n int) KeySize {
	return KeySize{bytes: n}
}

func VariableKey() KeySize {
	return KeySize{variable: true}
}

func (k KeySize) Variable() bool {
	return k.variable
}

// Bytes returns the key length to synthesize for benchmarking.
func (k KeySize) Bytes() int {
	if k.variable {
		return defaultVariableKeyBytes
	}
	return k.bytes
}

// Cipher is the capability surface a block cipher must expose to be
// benchmarked. Concrete implementations live in the ciphers package;
// nothing downstream of a Handle ever sees the concrete type.
type Cipher interface {
	Name() string
	KeySize() KeySize
	New(key Key) (cipher.Block, error)
}

// Handle is an instantiated cipher: the capability value bound to a
// deterministic key and a ready cipher state. Immutable after
// construction, so it is safe to read from every benchmark iteration.
type Handle struct {
	c     Cipher
	key   Key
	block cipher.Block
}

// NewHandle synthesizes a key of the cipher's required size (every
// byte 1, or a single zero byte for a keyless cipher) and binds it.
func NewHandle(c Cipher) (*Handle, error) {
	key := SynthesizeKey(c.KeySize())
	block, err := c.New(key)
	if err != nil {
		return nil, fmt.Errorf("instantiate %s: %w", c.Name(), err)
	}
	return &Handle{c: c, key: key, block: block}, nil
}

// SynthesizeKey builds the fixed benchmarking key for a key size.
func SynthesizeKey(ks KeySize) Key {
	n := ks.Bytes()
	if n == 0 {
		return Key{0}
	}
	return Key(Ones(n))
}

func (h *Handle) Name() string {
	return h.c.Name()
}

func (h *Handle) BlockSize() int {
	return h.block.BlockSize()
}

// NewCatalog instantiates every supplied cipher, in order.
func NewCatalog(cs []Cipher) ([]*Handle, error) {
	handles := make([]*Handle, 0, len(cs))
	for _, c := range cs {
		h, err := NewHandle(c)
		if err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}
