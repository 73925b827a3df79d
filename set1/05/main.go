// 5. Implement repeating-key XOR

package main

import (
	"bytes"
	"crypto/cipher"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pmaddams/cryptopals/hexcode"
	"github.com/pmaddams/cryptopals/internal/cmdutil"
	"github.com/pmaddams/cryptopals/xor"
)

func main() {
	fs := flag.NewFlagSet("repeatxor", flag.ExitOnError)
	d := fs.Bool("d", false, "decrypt")
	k := fs.String("k", "", "key (overrides the configured key)")
	env, err := cmdutil.Setup(fs, os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	key := env.Config.Key
	if *k != "" {
		key = *k
	}
	fn := encrypt
	if *d {
		fn = decrypt
	}
	cmdutil.Exit(env.EachInput(os.Stdin, func(in io.Reader) error {
		// Since the stream is stateful, we have to re-initialize it.
		stream, err := xor.NewCipher([]byte(key))
		if err != nil {
			return err
		}
		return fn(os.Stdout, in, stream)
	}))
}

// encrypt reads plaintext and prints hex-encoded ciphertext.
func encrypt(out io.Writer, in io.Reader, stream cipher.Stream) error {
	buf, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	buf = bytes.TrimSuffix(buf, []byte("\n"))
	buf = bytes.TrimSuffix(buf, []byte("\r"))
	stream.XORKeyStream(buf, buf)
	_, err = fmt.Fprintln(out, hexcode.EncodeToString(buf))
	return err
}

// decrypt reads hex-encoded ciphertext and prints plaintext.
func decrypt(out io.Writer, in io.Reader, stream cipher.Stream) error {
	buf, err := io.ReadAll(hexcode.NewDecoder(in))
	if err != nil {
		return err
	}
	stream.XORKeyStream(buf, buf)
	_, err = out.Write(buf)
	return err
}
