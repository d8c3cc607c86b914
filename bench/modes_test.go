package bench

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// aes128Cipher and desCipher are catalog stand-ins with 16 and 8 byte
// blocks respectively.
type aes128Cipher struct{}

func (aes128Cipher) Name() string     { return "AES128" }
func (aes128Cipher) KeySize() KeySize { return FixedKey(16) }
func (aes128Cipher) New(key Key) (cipher.Block, error) {
	return aes.NewCipher(key)
}

type desTestCipher struct{}

func (desTestCipher) Name() string     { return "DES" }
func (desTestCipher) KeySize() KeySize { return FixedKey(8) }
func (desTestCipher) New(key Key) (cipher.Block, error) {
	return des.NewCipher(key)
}

func mustHandle(t *testing.T, c Cipher) *Handle {
	t.Helper()
	h, err := NewHandle(c)
	require.NoError(t, err)
	return h
}

func modesOf(mfs []ModeFunc) []Mode {
	out := make([]Mode, 0, len(mfs))
	for _, mf := range mfs {
		out = append(out, mf.Mode)
	}
	return out
}

func TestParseMode(t *testing.T) {
	for _, m := range AllModes() {
		got, ok := ParseMode(m.String())
		require.True(t, ok)
		assert.Equal(t, m, got)
	}
	got, ok := ParseMode("gcm")
	require.True(t, ok)
	assert.Equal(t, GCM, got)

	_, ok = ParseMode("xyz")
	assert.False(t, ok)
}

func TestApplicable(t *testing.T) {
	t.Run("AES128", func(t *testing.T) {
		h := mustHandle(t, aes128Cipher{})
		got := modesOf(Applicable(h, AllModes()))
		// OCB and CCM refuse a block-length nonce, CWC has no
		// implementation at all.
		assert.Equal(t, []Mode{ECB, CBC, CTR, XTS, EAX, GCM}, got)
	})

	t.Run("DES", func(t *testing.T) {
		h := mustHandle(t, desTestCipher{})
		got := modesOf(Applicable(h, AllModes()))
		assert.Equal(t, []Mode{ECB, CBC, CTR}, got)
	})

	t.Run("AEADOnlyRequestNoSupport", func(t *testing.T) {
		h := mustHandle(t, desTestCipher{})
		assert.Empty(t, Applicable(h, []Mode{GCM}))
	})

	t.Run("CatalogOrderNotRequestOrder", func(t *testing.T) {
		h := mustHandle(t, aes128Cipher{})
		got := modesOf(Applicable(h, []Mode{GCM, ECB}))
		assert.Equal(t, []Mode{ECB, GCM}, got)
	})
}

func TestModeClosures(t *testing.T) {
	h := mustHandle(t, aes128Cipher{})

	t.Run("ECBMatchesBlockEncrypt", func(t *testing.T) {
		mfs := Applicable(h, []Mode{ECB})
		require.Len(t, mfs, 1)
		pt := Plaintext(Zeros(32))
		ct := mfs[0].Fn(pt)
		require.Len(t, ct, 32)

		want := make([]byte, 32)
		h.block.Encrypt(want[:16], pt[:16])
		h.block.Encrypt(want[16:], pt[16:])
		assert.Equal(t, Ciphertext(want), ct)
	})

	t.Run("CTRHandlesPartialBlocks", func(t *testing.T) {
		mfs := Applicable(h, []Mode{CTR})
		require.Len(t, mfs, 1)
		ct := mfs[0].Fn(Plaintext(Zeros(20)))
		assert.Len(t, ct, 20)
	})

	t.Run("CBCIsDeterministicPerCall", func(t *testing.T) {
		mfs := Applicable(h, []Mode{CBC})
		require.Len(t, mfs, 1)
		pt := Plaintext(Zeros(64))
		assert.Equal(t, mfs[0].Fn(pt), mfs[0].Fn(pt))
	})

	t.Run("XTSKeepsLength", func(t *testing.T) {
		mfs := Applicable(h, []Mode{XTS})
		require.Len(t, mfs, 1)
		ct := mfs[0].Fn(Plaintext(Zeros(64)))
		assert.Len(t, ct, 64)
	})

	t.Run("AEADDropsTag", func(t *testing.T) {
		for _, m := range []Mode{EAX, GCM} {
			mfs := Applicable(h, []Mode{m})
			require.Len(t, mfs, 1, m.String())
			pt := Plaintext(Zeros(48))
			ct := mfs[0].Fn(pt)
			assert.Len(t, ct, 48, m.String())
		}
	})

	t.Run("GCMMatchesSealPrefix", func(t *testing.T) {
		mfs := Applicable(h, []Mode{GCM})
		require.Len(t, mfs, 1)
		pt := Plaintext(Zeros(32))
		ct := mfs[0].Fn(pt)

		aead, err := cipher.NewGCMWithNonceSize(h.block, 16)
		require.NoError(t, err)
		sealed := aead.Seal(nil, Zeros(16), pt, nil)
		assert.Equal(t, Ciphertext(sealed[:32]), ct)
	})
}

func TestNewAEADBlockSizeGate(t *testing.T) {
	h := mustHandle(t, desTestCipher{})
	for _, m := range []Mode{OCB, CCM, EAX, CWC, GCM} {
		_, err := h.newAEAD(m, Zeros(h.BlockSize()))
		assert.ErrorIs(t, err, ErrModeUnavailable, m.String())
	}
}

func TestNewAEADValidNonceSizes(t *testing.T) {
	h := mustHandle(t, aes128Cipher{})
	tests := []struct {
		mode  Mode
		nonce int
	}{
		{GCM, 12},
		{EAX, 16},
		{OCB, 15},
		{CCM, 13},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			aead, err := h.newAEAD(tc.mode, Zeros(tc.nonce))
			require.NoError(t, err)
			pt := Zeros(32)
			sealed := aead.Seal(nil, Zeros(aead.NonceSize()), pt, nil)
			assert.Len(t, sealed, 32+aead.Overhead())
		})
	}
}
