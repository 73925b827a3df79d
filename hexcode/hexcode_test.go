package hexcode

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	weak "math/rand"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pmaddams/cryptopals/errs"
)

func TestValue(t *testing.T) {
	cases := []struct {
		c    byte
		want byte
		ok   bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'f', 15, true},
		{'A', 10, true},
		{'F', 15, true},
		{'g', 0, false},
		{'G', 0, false},
		{'x', 0, false},
		{' ', 0, false},
		{'\n', 0, false},
	}
	for _, c := range cases {
		got, ok := Value(c.c)
		if got != c.want || ok != c.ok {
			t.Errorf("Value(%q) == %v, %v, want %v, %v", c.c, got, ok, c.want, c.ok)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := weak.New(weak.NewSource(1))
	for i := 0; i < 10; i++ {
		buf := make([]byte, rng.Intn(64))
		rng.Read(buf)
		s := strings.ToUpper(hex.EncodeToString(buf))

		got, err := DecodeString(s)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, buf) {
			t.Errorf("got %v, want %v", got, buf)
		}
		if enc := EncodeToString(got); enc != strings.ToLower(s) {
			t.Errorf("got %v, want %v", enc, strings.ToLower(s))
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		s    string
		cap  int
		want errs.Kind
	}{
		{"zz", 1, errs.InvalidHex},
		{"41 42", 4, errs.OddLength},
		{"41 4", 4, errs.InvalidHex},
		{"414", 4, errs.OddLength},
		{"414243", 2, errs.BufferTooSmall},
	}
	for _, c := range cases {
		dst := make([]byte, c.cap)
		if _, err := Decode(dst, []byte(c.s)); !errors.Is(err, c.want) {
			t.Errorf("Decode(%q): got %v, want %v", c.s, err, c.want)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	n, err := Decode(nil, nil)
	if n != 0 || err != nil {
		t.Errorf("got %v, %v, want 0, nil", n, err)
	}
}

func TestDecodeToText(t *testing.T) {
	cases := []struct {
		s, want string
	}{
		{"48656c6c6f", "Hello"},
		{"", ""},
		{"e9", "é"},
		{"00ff", "\x00ÿ"},
	}
	for _, c := range cases {
		got, err := DecodeToText(c.s)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
	if _, err := DecodeToText("4g"); !errors.Is(err, errs.InvalidHex) {
		t.Errorf("got %v, want %v", err, errs.InvalidHex)
	}
}

func TestNewDecoder(t *testing.T) {
	cases := []struct {
		s    string
		want []byte
	}{
		{"48656c6c6f", []byte("Hello")},
		{"48 65 6c\n6c\t6F\r\n", []byte("Hello")},
		{"", nil},
		{"  \n\t ", nil},
	}
	for _, c := range cases {
		got, err := io.ReadAll(NewDecoder(strings.NewReader(c.s)))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, c.want) {
			t.Errorf("got %v, want %v", got, c.want)
		}
	}
}

func TestNewDecoderOneByteReader(t *testing.T) {
	r := iotest.OneByteReader(strings.NewReader("4d 61 6e"))
	got, err := io.ReadAll(NewDecoder(r))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "Man" {
		t.Errorf("got %q, want %q", got, "Man")
	}
}

func TestNewDecoderErrors(t *testing.T) {
	cases := []struct {
		r    io.Reader
		want errs.Kind
	}{
		{strings.NewReader("48656c6c6f7"), errs.OddLength},
		{strings.NewReader("48656x6c6f"), errs.InvalidHex},
		{strings.NewReader("z8656c6c6f"), errs.InvalidHex},
		{iotest.ErrReader(errors.New("boom")), errs.IO},
	}
	for _, c := range cases {
		if _, err := io.ReadAll(NewDecoder(c.r)); !errors.Is(err, c.want) {
			t.Errorf("got %v, want %v", err, c.want)
		}
	}
}
