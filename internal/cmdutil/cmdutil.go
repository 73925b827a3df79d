// Package cmdutil holds the plumbing shared by the challenge commands.
package cmdutil

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/pmaddams/cryptopals/errs"
	"github.com/pmaddams/cryptopals/internal/config"
)

// Env is what a command needs after startup.
type Env struct {
	Config config.Config
	Logger *slog.Logger
	Files  []string
}

// Setup parses flags, loads the configuration and builds the logger.
// Commands register their own flags on fs before calling Setup.
func Setup(fs *flag.FlagSet, args []string, stderr io.Writer) (*Env, error) {
	path := fs.String("config", "", "configuration file (default ./"+config.DefaultFile+" if present)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg, err := config.Load(*path)
	if err != nil {
		return nil, err
	}
	logger, err := NewLogger(stderr, cfg.Log)
	if err != nil {
		return nil, err
	}
	return &Env{
		Config: cfg,
		Logger: logger.With("cmd", fs.Name(), "run", uuid.NewString()),
		Files:  fs.Args(),
	}, nil
}

// NewLogger returns a logger writing to w as configured.
func NewLogger(w io.Writer, c config.LogConfig) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unsupported log format %q", c.Format)
}

// EachInput calls fn on every named file, or on stdin if there are none.
// Failures are logged and do not stop the remaining files. It returns
// false if anything failed.
func (e *Env) EachInput(stdin io.Reader, fn func(io.Reader) error) bool {
	if len(e.Files) == 0 {
		if err := fn(stdin); err != nil {
			e.Fail("stdin", err)
			return false
		}
		return true
	}
	ok := true
	for _, file := range e.Files {
		f, err := os.Open(file)
		if err != nil {
			e.Fail(file, err)
			ok = false
			continue
		}
		if err := fn(f); err != nil {
			e.Fail(file, err)
			ok = false
		}
		f.Close()
	}
	return ok
}

// Fail logs err with its description.
func (e *Env) Fail(input string, err error) {
	e.Logger.Error(errs.Describe(err), "input", input, "error", err)
}

// Exit terminates the process with a failure status unless ok.
func Exit(ok bool) {
	if !ok {
		os.Exit(1)
	}
}
