package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pmaddams/cryptopals/errs"
	"github.com/pmaddams/cryptopals/singlebyte"
)

const sample = "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736"

func TestDecrypt(t *testing.T) {
	cases := []struct {
		in      string
		verbose bool
		want    string
	}{
		{
			sample,
			false,
			"Cooking MC's like a pound of bacon\n",
		},
		{
			// Lines are joined before breaking.
			sample[:20] + "\n" + sample[20:] + "\n",
			false,
			"Cooking MC's like a pound of bacon\n",
		},
		{
			sample,
			true,
			"Best key: 0x58\n" +
				"Best plaintext (hex): 436f6f6b696e67204d432773206c696b65206120706f756e64206f66206261636f6e\n" +
				"Best plaintext (ascii): Cooking MC's like a pound of bacon\n",
		},
	}
	for _, c := range cases {
		var out bytes.Buffer
		if err := decrypt(&out, strings.NewReader(c.in), &singlebyte.Solver{}, c.verbose); err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(out.String(), c.want) {
			t.Errorf("got %q, want prefix %q", out.String(), c.want)
		}
	}
}

func TestDecryptErrors(t *testing.T) {
	cases := []struct {
		in   string
		want errs.Kind
	}{
		{"", errs.Empty},
		{"1b3", errs.OddLength},
		{"1bzz", errs.InvalidHex},
	}
	for _, c := range cases {
		err := decrypt(&bytes.Buffer{}, strings.NewReader(c.in), &singlebyte.Solver{}, false)
		if !errors.Is(err, c.want) {
			t.Errorf("decrypt(%q): got %v, want %v", c.in, err, c.want)
		}
	}
}

func TestPrintScore(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		// No letters at all: the floor clamps to zero.
		{"2121", "0.00\n"},
		{"9f4c3ad2b7e18c44ff00aa11cc33", "0.00\n"},
	}
	for _, c := range cases {
		var out bytes.Buffer
		if err := printScore(&out, strings.NewReader(c.in)); err != nil {
			t.Fatal(err)
		}
		if out.String() != c.want {
			t.Errorf("got %q, want %q", out.String(), c.want)
		}
	}

	var out bytes.Buffer
	if err := printScore(&out, strings.NewReader("54686520717569636b2062726f776e20666f7820")); err != nil {
		t.Fatal(err)
	}
	if out.String() == "0.00\n" {
		t.Errorf("English scored %q", out.String())
	}
	if err := printScore(&out, strings.NewReader(" \n")); !errors.Is(err, errs.Empty) {
		t.Errorf("got %v, want %v", err, errs.Empty)
	}
}
