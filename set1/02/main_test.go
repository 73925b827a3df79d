package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/pmaddams/cryptopals/errs"
)

func TestXORLines(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{
			"1c0111001f010100061a024b53535009181c\n686974207468652062756c6c277320657965\n",
			"746865206b696420646f6e277420706c6179\n",
		},
		{
			"00000000\n01010101",
			"01010101\n",
		},
		{
			"0A0B\n0a0b\n",
			"0000\n",
		},
	}
	for _, c := range cases {
		var out bytes.Buffer
		if err := xorLines(&out, strings.NewReader(c.in)); err != nil {
			t.Fatal(err)
		}
		if out.String() != c.want {
			t.Errorf("got %q, want %q", out.String(), c.want)
		}
	}
}

func TestXORLinesErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"0102\n010203\n", errs.Argument},
		{"01zz\n0102\n", errs.InvalidHex},
		{"010\n0102\n", errs.OddLength},
	}
	for _, c := range cases {
		if err := xorLines(&bytes.Buffer{}, strings.NewReader(c.in)); !errors.Is(err, c.want) {
			t.Errorf("got %v, want %v", err, c.want)
		}
	}
	if err := xorLines(&bytes.Buffer{}, strings.NewReader("0102\n")); err == nil {
		t.Error("expected error for a single line")
	}
}
