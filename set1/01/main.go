// 1. Convert hex to base64

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pmaddams/cryptopals/b64"
	"github.com/pmaddams/cryptopals/internal/cmdutil"
)

func main() {
	env, err := cmdutil.Setup(flag.NewFlagSet("hex2b64", flag.ExitOnError), os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cmdutil.Exit(env.EachInput(os.Stdin, func(in io.Reader) error {
		return convert(os.Stdout, in)
	}))
}

// convert reads hex-encoded input and prints base64.
func convert(out io.Writer, in io.Reader) error {
	return b64.Convert(out, in)
}
