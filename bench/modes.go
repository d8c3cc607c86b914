package bench

import (
	"crypto/cipher"
	"errors"
	"strings"

	"github.com/ProtonMail/go-crypto/eax"
	"github.com/ProtonMail/go-crypto/ocb"
	"github.com/pion/dtls/v2/pkg/crypto/ccm"
	"golang.org/x/crypto/xts"
)

// Mode is one of the supported modes of operation. The declaration
// order is the catalog order and fixes table row order.
type Mode int

const (
	ECB Mode = iota
	CBC
	CTR
	XTS
	OCB
	CCM
	EAX
	CWC
	GCM
)

var modeNames = [...]string{"ECB", "CBC", "CTR", "XTS", "OCB", "CCM", "EAX", "CWC", "GCM"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// AllModes returns the full mode catalog in catalog order.
func AllModes() []Mode {
	modes := make([]Mode, len(modeNames))
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// ParseMode resolves a mode name case-insensitively.
func ParseMode(name string) (Mode, bool) {
	for i, n := range modeNames {
		if strings.EqualFold(name, n) {
			return Mode(i), true
		}
	}
	return 0, false
}

// ErrModeUnavailable marks a (cipher, mode) pair that cannot be
// constructed; the pair is skipped, never reported as a failure.
var ErrModeUnavailable = errors.New("mode not available for cipher")

// ModeFunc pairs a mode with its ready encryption closure.
type ModeFunc struct {
	Mode Mode
	Fn   EncryptFunc
}

// Applicable builds an encryption closure for every requested mode the
// handle supports, in catalog order. Pairs that cannot be constructed
// are dropped silently.
func Applicable(h *Handle, modes []Mode) []ModeFunc {
	requested := make(map[Mode]bool, len(modes))
	for _, m := range modes {
		requested[m] = true
	}
	var out []ModeFunc
	for _, m := range AllModes() {
		if !requested[m] {
			continue
		}
		fn, err := h.modeFunc(m)
		if err != nil {
			continue
		}
		out = append(out, ModeFunc{Mode: m, Fn: fn})
	}
	return out
}

// modeFunc turns a (cipher, mode) pair into an encryption closure over
// a fixed all-zero IV/nonce of the cipher's block length.
func (h *Handle) modeFunc(m Mode) (EncryptFunc, error) {
	bs := h.BlockSize()
	switch m {
	case ECB:
		return func(pt Plaintext) Ciphertext {
			ct := make(Ciphertext, len(pt))
			for i := 0; i+bs <= len(pt); i += bs {
				h.block.Encrypt(ct[i:i+bs], pt[i:i+bs])
			}
			return ct
		}, nil
	case CBC:
		return func(pt Plaintext) Ciphertext {
			n := FullBlocks(len(pt), bs)
			ct := make(Ciphertext, len(pt))
			cipher.NewCBCEncrypter(h.block, Zeros(bs)).CryptBlocks(ct[:n], pt[:n])
			return ct
		}, nil
	case CTR:
		return func(pt Plaintext) Ciphertext {
			ct := make(Ciphertext, len(pt))
			cipher.NewCTR(h.block, Zeros(bs)).XORKeyStream(ct, pt)
			return ct
		}, nil
	case XTS:
		// Pair the cipher with itself as data-unit and tweak cipher.
		doubled := make(Key, 0, 2*len(h.key))
		doubled = append(doubled, h.key...)
		doubled = append(doubled, h.key...)
		xc, err := xts.NewCipher(func(k []byte) (cipher.Block, error) {
			return h.c.New(Key(k))
		}, doubled)
		if err != nil {
			return nil, ErrModeUnavailable
		}
		return func(pt Plaintext) Ciphertext {
			n := FullBlocks(len(pt), bs)
			ct := make(Ciphertext, len(pt))
			if n > 0 {
				xc.Encrypt(ct[:n], pt[:n], 0)
			}
			return ct
		}, nil
	case OCB, CCM, EAX, CWC, GCM:
		aead, err := h.newAEAD(m, Zeros(bs))
		if err != nil {
			return nil, ErrModeUnavailable
		}
		nonce := Zeros(aead.NonceSize())
		return func(pt Plaintext) Ciphertext {
			// Only encryption cost is measured; the tag is dropped.
			sealed := aead.Seal(nil, nonce, pt, nil)
			return Ciphertext(sealed[:len(pt)])
		}, nil
	}
	return nil, ErrModeUnavailable
}

// newAEAD initializes an AEAD context for the handle, or fails for
// pairs the mode cannot serve. Tag length equals the block length.
// Every implementation below is 128-bit-block only.
func (h *Handle) newAEAD(m Mode, nonce []byte) (cipher.AEAD, error) {
	bs := h.BlockSize()
	if bs != 16 {
		return nil, ErrModeUnavailable
	}
	switch m {
	case GCM:
		return cipher.NewGCMWithNonceSize(h.block, len(nonce))
	case EAX:
		return eax.NewEAXWithNonceAndTagSize(h.block, len(nonce), bs)
	case OCB:
		return ocb.NewOCBWithNonceAndTagSize(h.block, len(nonce), bs)
	case CCM:
		return ccm.NewCCM(h.block, bs, len(nonce))
	}
	// CWC has no Go implementation.
	return nil, ErrModeUnavailable
}
