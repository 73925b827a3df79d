// 3. Single-byte XOR cipher

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pmaddams/cryptopals/english"
	"github.com/pmaddams/cryptopals/hexcode"
	"github.com/pmaddams/cryptopals/internal/cmdutil"
	"github.com/pmaddams/cryptopals/singlebyte"
)

func main() {
	fs := flag.NewFlagSet("singlexor", flag.ExitOnError)
	verbose := fs.Bool("v", false, "print the key and score")
	score := fs.Bool("score", false, "print how English-like the input is, from 0 to 100")
	env, err := cmdutil.Setup(fs, os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	s := &singlebyte.Solver{Parallel: env.Config.Parallel, Logger: env.Logger}
	cmdutil.Exit(env.EachInput(os.Stdin, func(in io.Reader) error {
		if *score {
			return printScore(os.Stdout, in)
		}
		return decrypt(os.Stdout, in, s, *verbose)
	}))
}

// decrypt reads hex-encoded ciphertext and prints plaintext.
func decrypt(out io.Writer, in io.Reader, s *singlebyte.Solver, verbose bool) error {
	buf, err := io.ReadAll(hexcode.NewDecoder(in))
	if err != nil {
		return err
	}
	c, err := s.Solve(buf)
	if err != nil {
		return err
	}
	if !verbose {
		_, err = fmt.Fprintln(out, string(c.Plaintext))
		return err
	}
	h := hexcode.EncodeToString(c.Plaintext)
	text, err := hexcode.DecodeToText(h)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Best key: 0x%02x\nBest plaintext (hex): %s\nBest plaintext (ascii): %s\nScore: %.2f\n",
		c.Key, h, text, c.Score)
	return err
}

// printScore reads hex-encoded text and prints its score as a percentage.
func printScore(out io.Writer, in io.Reader) error {
	buf, err := io.ReadAll(hexcode.NewDecoder(in))
	if err != nil {
		return err
	}
	n, err := english.Score(buf)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%.2f\n", english.Percentage(n))
	return err
}
