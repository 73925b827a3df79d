package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	weak "math/rand"
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	rng := weak.New(weak.NewSource(1))
	n := 16 + rng.Intn(16)
	buf := make([]byte, n)
	for i := 0; i < 5; i++ {
		rng.Read(buf)
		s := hex.EncodeToString(buf)
		want := base64.StdEncoding.EncodeToString(buf) + "\n"

		var out bytes.Buffer
		if err := convert(&out, strings.NewReader(s)); err != nil {
			t.Fatal(err)
		}
		if got := out.String(); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
