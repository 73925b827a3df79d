// Package english scores text by how closely it resembles English prose.
package english

import (
	"github.com/pmaddams/cryptopals/errs"
	"github.com/pmaddams/cryptopals/hexcode"
)

const (
	// Penalty is subtracted for every byte outside printable ASCII.
	Penalty = 50.0

	// RatioWeight scales the share of letters and spaces in the input.
	RatioWeight = 50.0

	// Floor is the score of input with no letters or spaces, before penalties.
	Floor = -1000.0

	epsilon = 1e-9
)

// frequencies holds English letter frequencies for a-z followed by space.
var frequencies = [27]float64{
	// a-m
	0.0817, 0.0150, 0.0278, 0.0425, 0.1270, 0.0223, 0.0202,
	0.0609, 0.0697, 0.0015, 0.0077, 0.0403, 0.0241,
	// n-z
	0.0675, 0.0751, 0.0193, 0.0010, 0.0599, 0.0633, 0.0906,
	0.0276, 0.0098, 0.0236, 0.0015, 0.0197, 0.0007,
	// space
	0.1300,
}

// Frequency returns the reference frequency of c, which must be a lowercase letter or space.
func Frequency(c byte) (float64, bool) {
	switch {
	case 'a' <= c && c <= 'z':
		return frequencies[c-'a'], true
	case c == ' ':
		return frequencies[26], true
	}
	return 0, false
}

// counts tallies a buffer for scoring.
type counts struct {
	buckets [27]int
	letters int
	total   int
	penalty float64
}

func count(buf []byte) counts {
	var c counts
	for _, b := range buf {
		c.total++
		switch {
		case 'a' <= b && b <= 'z':
			c.buckets[b-'a']++
			c.letters++
		case 'A' <= b && b <= 'Z':
			c.buckets[b-'A']++
			c.letters++
		case b == ' ':
			c.buckets[26]++
			c.letters++
		case b == '\n', b == '\r', b == '\t', b == ',', b == '.', b == '\'', b == '"':
		case b < 32 || b > 126:
			c.penalty += Penalty
		}
	}
	return c
}

// Score returns a score for buf. Higher scores are more English-like.
func Score(buf []byte) (float64, error) {
	if len(buf) == 0 {
		return 0, errs.E("english.Score", errs.Empty, nil)
	}
	c := count(buf)
	if c.letters == 0 {
		return Floor - c.penalty, nil
	}
	var chi2 float64
	for i, f := range frequencies {
		expected := f * float64(c.letters)
		diff := float64(c.buckets[i]) - expected
		chi2 += diff * diff / (expected + epsilon)
	}
	ratio := float64(c.letters) / float64(c.total)

	return -chi2 + ratio*RatioWeight - c.penalty, nil
}

// ScoreHex decodes a hex string and scores the result.
func ScoreHex(s string) (float64, error) {
	if len(s) == 0 {
		return 0, errs.E("english.ScoreHex", errs.Empty, nil)
	}
	buf, err := hexcode.DecodeString(s)
	if err != nil {
		return 0, err
	}
	return Score(buf)
}

// Percentage maps a score onto [0, 100].
func Percentage(score float64) float64 {
	p := score + 50.0
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
