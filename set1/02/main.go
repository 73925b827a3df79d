// 2. Fixed XOR

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pmaddams/cryptopals/hexcode"
	"github.com/pmaddams/cryptopals/internal/cmdutil"
	"github.com/pmaddams/cryptopals/xor"
)

func main() {
	fs := flag.NewFlagSet("fixedxor", flag.ExitOnError)
	raw := fs.Bool("raw", false, "read raw bytes and XOR the first half with the second")
	env, err := cmdutil.Setup(fs, os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cmdutil.Exit(env.EachInput(os.Stdin, func(in io.Reader) error {
		if *raw {
			return xor.Halves(os.Stdout, in)
		}
		return xorLines(os.Stdout, in)
	}))
}

// xorLines reads two hex-encoded lines and prints their XOR combination.
func xorLines(out io.Writer, in io.Reader) error {
	input := bufio.NewScanner(in)
	b1, err := readHexLine(input)
	if err != nil {
		return err
	}
	b2, err := readHexLine(input)
	if err != nil {
		return err
	}
	n, err := xor.Bytes(b1, b1, b2)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, hexcode.EncodeToString(b1[:n]))
	return err
}

// readHexLine reads a hex-encoded line and returns a buffer.
func readHexLine(input *bufio.Scanner) ([]byte, error) {
	if !input.Scan() {
		if err := input.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("expected two lines of hex")
	}
	return hexcode.DecodeString(input.Text())
}
