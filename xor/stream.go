package xor

import (
	"io"
	"math"

	"github.com/pmaddams/cryptopals/errs"
)

const chunkSize = 4096

// growBuffer is a byte buffer whose capacity only changes by doubling.
type growBuffer struct {
	data  []byte
	limit int
}

func newGrowBuffer(limit int) (*growBuffer, error) {
	if limit < chunkSize {
		return nil, errs.E("xor.Halves", errs.OutOfMemory, nil)
	}
	return &growBuffer{data: make([]byte, 0, chunkSize), limit: limit}, nil
}

// grow ensures room for required bytes, doubling the capacity as needed.
func (g *growBuffer) grow(required int) error {
	c := cap(g.data)
	for required > c {
		if c > g.limit/2 {
			return errs.E("xor.Halves", errs.OutOfMemory, nil)
		}
		c *= 2
	}
	if c == cap(g.data) {
		return nil
	}
	data := make([]byte, len(g.data), c)
	copy(data, g.data)
	g.data = data
	return nil
}

func (g *growBuffer) append(p []byte) error {
	if len(p) > g.limit-len(g.data) {
		return errs.E("xor.Halves", errs.OutOfMemory, nil)
	}
	if err := g.grow(len(g.data) + len(p)); err != nil {
		return err
	}
	g.data = append(g.data, p...)
	return nil
}

// Halves reads src to the end, treats it as two back-to-back buffers of
// equal length, and writes their XOR combination to dst.
func Halves(dst io.Writer, src io.Reader) error {
	return halves(dst, src, math.MaxInt)
}

func halves(dst io.Writer, src io.Reader, limit int) error {
	const op = "xor.Halves"
	if dst == nil || src == nil {
		return errs.E(op, errs.Argument, nil)
	}
	buf, err := newGrowBuffer(limit)
	if err != nil {
		return err
	}
	chunk := make([]byte, chunkSize)
	for {
		n, err := src.Read(chunk)
		if n > 0 {
			if err := buf.append(chunk[:n]); err != nil {
				return err
			}
		}
		if err == io.EOF {
			break
		} else if err != nil {
			return errs.E(op, errs.IO, err)
		}
	}
	if len(buf.data)%2 != 0 {
		return errs.E(op, errs.OddInput, nil)
	}
	half := len(buf.data) / 2
	n, err := Bytes(buf.data, buf.data[:half], buf.data[half:])
	if err != nil {
		return err
	}
	if _, err := dst.Write(buf.data[:n]); err != nil {
		return errs.E(op, errs.IO, err)
	}
	return nil
}
