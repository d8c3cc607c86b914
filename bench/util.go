package bench

// Zeros returns an all-zero buffer of length n. Used for IVs, nonces
// and benchmark input.
func Zeros(n int) []byte {
	return make([]byte, n)
}

// Ones returns a buffer of length n with every byte set to 1.
func Ones(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = 1
	}
	return buf
}

// FullBlocks rounds n down to a whole number of blocks.
func FullBlocks(n, blockSize int) int {
	return n - n%blockSize
}
