// 4. Detect single-character XOR

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pmaddams/cryptopals/internal/cmdutil"
	"github.com/pmaddams/cryptopals/singlebyte"
)

func main() {
	fs := flag.NewFlagSet("detectxor", flag.ExitOnError)
	verbose := fs.Bool("v", false, "print the line number, key and score")
	env, err := cmdutil.Setup(fs, os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	s := &singlebyte.Solver{Parallel: env.Config.Parallel, Logger: env.Logger}
	cmdutil.Exit(env.EachInput(os.Stdin, func(in io.Reader) error {
		m, err := detect(os.Stdout, in, s, *verbose)
		if err == nil && m.Skipped > 0 {
			env.Logger.Warn("skipped undecodable lines", "count", m.Skipped)
		}
		return err
	}))
}

// detect reads hex-encoded lines and prints the one encrypted with single-byte XOR.
func detect(out io.Writer, in io.Reader, s *singlebyte.Solver, verbose bool) (singlebyte.Match, error) {
	m, err := s.Detect(in)
	if err != nil {
		return m, err
	}
	if verbose {
		_, err = fmt.Fprintf(out, "Best line: %d\nBest key: 0x%02x (%d)\nScore: %.2f\nPlaintext: %s",
			m.Line, m.Key, m.Key, m.Score, m.Plaintext)
	} else {
		_, err = fmt.Fprint(out, string(m.Plaintext))
	}
	return m, err
}
