// Package singlebyte breaks single-byte XOR ciphers by exhaustive search.
//
// Every key from 0x00 to 0xff is tried in ascending order and each candidate
// plaintext is scored with the english package. A candidate replaces the
// current best only if its score is strictly greater, so the lowest key wins
// ties. The same rule picks the first line when detecting across many lines.
package singlebyte

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/pmaddams/cryptopals/english"
	"github.com/pmaddams/cryptopals/errs"
	"github.com/pmaddams/cryptopals/hexcode"
	"github.com/pmaddams/cryptopals/xor"
)

// Candidate is a key together with the plaintext it produces and its score.
type Candidate struct {
	Key       byte
	Plaintext []byte
	Score     float64
}

// Match is the best candidate found among several lines of ciphertext.
type Match struct {
	Candidate

	// Line is the 1-based number of the input line.
	Line int

	// Skipped counts lines that could not be decoded.
	Skipped int
}

// Solver searches for single-byte XOR keys. The zero value is ready to use.
type Solver struct {
	// Parallel scores keys concurrently. Results do not depend on it.
	Parallel bool

	// Logger, if set, receives a debug record for every skipped line.
	Logger *slog.Logger
}

var defaultSolver Solver

// Solve returns the best candidate for ciphertext using a sequential search.
func Solve(ciphertext []byte) (Candidate, error) {
	return defaultSolver.Solve(ciphertext)
}

// SolveHex decodes hex-encoded ciphertext and returns the best candidate.
func SolveHex(s string) (Candidate, error) {
	return defaultSolver.SolveHex(s)
}

// result is the outcome of trying one key.
type result struct {
	plaintext []byte
	score     float64
	err       error
}

// try decrypts ciphertext with key k and scores the plaintext.
func try(ciphertext []byte, k byte) result {
	stream, err := xor.RepeatKey([]byte{k}, len(ciphertext))
	if err != nil {
		return result{err: err}
	}
	plaintext := make([]byte, len(ciphertext))
	if _, err := xor.Bytes(plaintext, ciphertext, stream); err != nil {
		return result{err: err}
	}
	score, err := english.Score(plaintext)
	return result{plaintext: plaintext, score: score, err: err}
}

// Solve returns the best candidate for ciphertext.
func (s *Solver) Solve(ciphertext []byte) (Candidate, error) {
	if len(ciphertext) == 0 {
		return Candidate{}, errs.E("singlebyte.Solve", errs.Empty, nil)
	}
	var results [256]result
	if s.Parallel {
		var wg sync.WaitGroup
		wg.Add(len(results))
		for i := range results {
			// Each goroutine writes only its own slot.
			go func(i int) {
				results[i] = try(ciphertext, byte(i))
				wg.Done()
			}(i)
		}
		wg.Wait()
	} else {
		for i := range results {
			results[i] = try(ciphertext, byte(i))
		}
	}

	var (
		best  Candidate
		found bool
	)
	// Reduce in ascending key order so the lowest key wins ties.
	for i, r := range results {
		if r.err != nil {
			return Candidate{}, r.err
		}
		if !found || r.score > best.Score {
			best = Candidate{Key: byte(i), Plaintext: r.plaintext, Score: r.score}
			found = true
		}
	}
	return best, nil
}

// SolveHex decodes hex-encoded ciphertext and returns the best candidate.
func (s *Solver) SolveHex(h string) (Candidate, error) {
	if len(h) == 0 {
		return Candidate{}, errs.E("singlebyte.SolveHex", errs.Empty, nil)
	}
	buf, err := hexcode.DecodeString(h)
	if err != nil {
		return Candidate{}, err
	}
	return s.Solve(buf)
}

// SolveInto is like SolveHex, but writes the plaintext into dst.
func (s *Solver) SolveInto(dst []byte, h string) (Candidate, error) {
	if len(dst) < len(h)/2 {
		return Candidate{}, errs.E("singlebyte.SolveInto", errs.BufferTooSmall, nil)
	}
	c, err := s.SolveHex(h)
	if err != nil {
		return Candidate{}, err
	}
	n := copy(dst, c.Plaintext)
	c.Plaintext = dst[:n]
	return c, nil
}

// DetectLines finds the line most likely to have been encrypted with
// single-byte XOR. Lines that are not valid hex are skipped.
func (s *Solver) DetectLines(lines []string) (Match, error) {
	var (
		best    Match
		found   bool
		skipped int
	)
	for i, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			continue
		}
		c, err := s.SolveHex(line)
		if err != nil {
			skipped++
			if s.Logger != nil {
				s.Logger.Debug("skipping line", "line", i+1, "error", err)
			}
			continue
		}
		if !found || c.Score > best.Score {
			best = Match{Candidate: c, Line: i + 1}
			found = true
		}
	}
	if !found {
		return Match{Skipped: skipped}, errs.E("singlebyte.Detect", errs.Empty, nil)
	}
	best.Skipped = skipped
	return best, nil
}

// Detect reads hex-encoded lines and calls DetectLines.
func (s *Solver) Detect(r io.Reader) (Match, error) {
	var lines []string
	input := bufio.NewScanner(r)
	for input.Scan() {
		lines = append(lines, input.Text())
	}
	if err := input.Err(); err != nil {
		return Match{}, errs.E("singlebyte.Detect", errs.IO, err)
	}
	return s.DetectLines(lines)
}
