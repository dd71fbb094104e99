package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// New returns a zerolog logger for opts. A nil Writer yields a disabled
// logger, since the terminal belongs to the prompt.
func New(opts Options) (zerolog.Logger, error) {
	if opts.Writer == nil {
		return zerolog.Nop(), nil
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	output := opts.Writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = opts.Writer
		console.TimeFormat = time.RFC3339
		console.NoColor = true
		output = console
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

// OpenFile opens path for appending and builds a logger writing to it. The
// returned closer must be called once logging is done. An empty path returns
// a disabled logger and a no-op closer.
func OpenFile(path string, opts Options) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	opts.Writer = f
	log, err := New(opts)
	if err != nil {
		f.Close()
		return zerolog.Nop(), nopCloser{}, err
	}
	return log, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
