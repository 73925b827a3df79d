// Package b64 encodes bytes as standard Base64 text.
package b64

import (
	"bufio"
	"io"

	"github.com/pmaddams/cryptopals/errs"
	"github.com/pmaddams/cryptopals/hexcode"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	pad      = '='
)

// EncodeBlock encodes 1 to 3 bytes of src as 4 characters in dst.
func EncodeBlock(dst, src []byte) {
	// Panic if src is empty or dst is smaller than 4.
	n := len(src)
	if n > 3 {
		n = 3
	}
	v := uint32(src[0]) << 16
	if n > 1 {
		v |= uint32(src[1]) << 8
	}
	if n > 2 {
		v |= uint32(src[2])
	}
	dst[0] = alphabet[v>>18&0x3f]
	dst[1] = alphabet[v>>12&0x3f]
	dst[2] = pad
	dst[3] = pad
	if n > 1 {
		dst[2] = alphabet[v>>6&0x3f]
	}
	if n > 2 {
		dst[3] = alphabet[v&0x3f]
	}
}

// EncodedLen returns the length of the Base64 encoding of n bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Encode writes the Base64 encoding of src to dst and returns the number of bytes written.
func Encode(dst, src []byte) (int, error) {
	n := EncodedLen(len(src))
	if len(dst) < n {
		return 0, errs.E("b64.Encode", errs.OutputOverflow, nil)
	}
	for i := 0; len(src) > 0; i += 4 {
		EncodeBlock(dst[i:], src)
		if len(src) < 3 {
			break
		}
		src = src[3:]
	}
	return n, nil
}

// EncodeToString returns the Base64 encoding of src.
func EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	Encode(dst, src)
	return string(dst)
}

// Convert reads hex-encoded input, ignoring whitespace, and writes its
// Base64 encoding followed by a newline.
func Convert(dst io.Writer, src io.Reader) error {
	const op = "b64.Convert"
	w := bufio.NewWriter(dst)
	r := hexcode.NewDecoder(src)

	var (
		block [3]byte
		out   [4]byte
		n     int
	)
	for {
		m, err := io.ReadFull(r, block[n:])
		n += m
		if n == len(block) {
			EncodeBlock(out[:], block[:])
			if _, err := w.Write(out[:]); err != nil {
				return errs.E(op, errs.IO, err)
			}
			n = 0
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		} else if err != nil {
			return err
		}
	}
	if n > 0 {
		EncodeBlock(out[:], block[:n])
		if _, err := w.Write(out[:]); err != nil {
			return errs.E(op, errs.IO, err)
		}
	}
	if err := w.WriteByte('\n'); err != nil {
		return errs.E(op, errs.IO, err)
	}
	if err := w.Flush(); err != nil {
		return errs.E(op, errs.IO, err)
	}
	return nil
}
