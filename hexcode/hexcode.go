// Package hexcode converts between hex-encoded text and bytes.
package hexcode

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/charmap"

	"github.com/pmaddams/cryptopals/errs"
)

const digits = "0123456789abcdef"

// Value returns the value of a single hex digit.
func Value(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Encode writes the lowercase hex encoding of src to dst and returns 2*len(src).
func Encode(dst, src []byte) int {
	// Panic if dst is smaller than 2*len(src).
	for i, b := range src {
		dst[2*i] = digits[b>>4]
		dst[2*i+1] = digits[b&0x0f]
	}
	return 2 * len(src)
}

// EncodeToString returns the lowercase hex encoding of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, 2*len(src))
	Encode(dst, src)
	return string(dst)
}

// Decode decodes hex digits from src into dst and returns the number of bytes written.
// Whitespace is not accepted.
func Decode(dst, src []byte) (int, error) {
	const op = "hexcode.Decode"
	if len(src)%2 != 0 {
		return 0, errs.E(op, errs.OddLength, nil)
	}
	n := len(src) / 2
	if len(dst) < n {
		return 0, errs.E(op, errs.BufferTooSmall, nil)
	}
	for i := 0; i < n; i++ {
		hi, ok1 := Value(src[2*i])
		lo, ok2 := Value(src[2*i+1])
		if !ok1 || !ok2 {
			return i, errs.E(op, errs.InvalidHex, nil)
		}
		dst[i] = hi<<4 | lo
	}
	return n, nil
}

// DecodeString returns the bytes represented by the hex string s.
func DecodeString(s string) ([]byte, error) {
	src := []byte(s)
	n, err := Decode(src, src)
	if err != nil {
		return nil, err
	}
	return src[:n], nil
}

// DecodeToText decodes s and interprets every byte as the character with
// the same code point. The result is not checked for valid UTF-8 input.
func DecodeToText(s string) (string, error) {
	buf, err := DecodeString(s)
	if err != nil {
		return "", err
	}
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(buf)
	if err != nil {
		return "", errs.E("hexcode.DecodeToText", errs.Other, err)
	}
	return string(text), nil
}

// decoder skips ASCII whitespace between hex digits.
type decoder struct {
	r   *bufio.Reader
	err error
}

// NewDecoder returns a reader that decodes hex digits read from r.
// Whitespace anywhere in the input is skipped.
func NewDecoder(r io.Reader) io.Reader {
	return &decoder{r: bufio.NewReader(r)}
}

func (d *decoder) Read(p []byte) (int, error) {
	const op = "hexcode.NewDecoder"
	if d.err != nil {
		return 0, d.err
	}
	var n int
	for n < len(p) {
		hi, err := d.digit()
		if err != nil {
			d.err = err
			break
		}
		lo, err := d.digit()
		if err == io.EOF {
			err = errs.E(op, errs.OddLength, nil)
		}
		if err != nil {
			d.err = err
			break
		}
		p[n] = hi<<4 | lo
		n++
		// Return what we have rather than block on the next read.
		if d.r.Buffered() == 0 {
			break
		}
	}
	if n > 0 {
		return n, nil
	}
	return 0, d.err
}

// digit returns the value of the next non-whitespace byte.
func (d *decoder) digit() (byte, error) {
	for {
		c, err := d.r.ReadByte()
		if err == io.EOF {
			return 0, err
		} else if err != nil {
			return 0, errs.E("hexcode.NewDecoder", errs.IO, err)
		}
		if isSpace(c) {
			continue
		}
		v, ok := Value(c)
		if !ok {
			return 0, errs.E("hexcode.NewDecoder", errs.InvalidHex, nil)
		}
		return v, nil
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
