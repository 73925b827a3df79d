// Package xor implements fixed, single-byte and repeating-key XOR.
package xor

import (
	"crypto/cipher"

	"github.com/pmaddams/cryptopals/errs"
)

// Bytes produces the XOR combination of two equal-length buffers.
// dst may alias a or b.
func Bytes(dst, a, b []byte) (int, error) {
	const op = "xor.Bytes"
	if len(a) != len(b) {
		return 0, errs.E(op, errs.Argument, nil)
	}
	if len(dst) < len(a) {
		return 0, errs.E(op, errs.BufferTooSmall, nil)
	}
	for i := range a {
		dst[i] = a[i] ^ b[i]
	}
	return len(a), nil
}

// SingleByte produces the XOR combination of a buffer with a single byte.
func SingleByte(dst, src []byte, k byte) {
	// Panic if dst is smaller than src.
	for i := range src {
		dst[i] = src[i] ^ k
	}
}

// RepeatKey returns a key stream of length n made by repeating key.
func RepeatKey(key []byte, n int) ([]byte, error) {
	if n < 0 || (len(key) == 0 && n > 0) {
		return nil, errs.E("xor.RepeatKey", errs.Argument, nil)
	}
	res := make([]byte, n)
	for i := range res {
		res[i] = key[i%len(key)]
	}
	return res, nil
}

// Repeating encrypts src with repeating-key XOR.
func Repeating(dst, src, key []byte) (int, error) {
	stream, err := RepeatKey(key, len(src))
	if err != nil {
		return 0, err
	}
	return Bytes(dst, src, stream)
}

// xorCipher represents a repeating XOR stream cipher.
type xorCipher struct {
	key []byte
	pos int
}

// NewCipher creates a new repeating XOR cipher.
func NewCipher(key []byte) (cipher.Stream, error) {
	if len(key) == 0 {
		return nil, errs.E("xor.NewCipher", errs.Argument, nil)
	}
	return &xorCipher{key: key}, nil
}

// XORKeyStream encrypts a buffer with repeating XOR, continuing from the
// key position left by the previous call.
func (x *xorCipher) XORKeyStream(dst, src []byte) {
	// Panic if dst is smaller than src.
	for i := range src {
		dst[i] = src[i] ^ x.key[x.pos]
		x.pos++
		if x.pos == len(x.key) {
			x.pos = 0
		}
	}
}
