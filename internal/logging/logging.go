// Package logging builds the logrus logger used for diagnostics. Reports go
// to stdout; logs go to stderr or a log file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options configures the logger.
type Options struct {
	// Level is a logrus level name; empty means info.
	Level string
	// File, when set, receives log lines (appended) instead of Output.
	File    string
	NoColor bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// Init returns a logger configured from opts and a func that releases the log
// file, if one was opened. A log file that cannot be opened falls back to
// Output with a warning.
func Init(opts Options) (*logrus.Logger, func() error, error) {
	noop := func() error { return nil }
	lvl := logrus.InfoLevel
	if opts.Level != "" {
		l, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, noop, fmt.Errorf("log level: %w", err)
		}
		lvl = l
	}

	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:   !opts.NoColor && opts.File == "",
		DisableColors: opts.NoColor || opts.File != "",
		FullTimestamp: true,
		DisableQuote:  true,
		PadLevelText:  true,
	})
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	log.SetOutput(out)

	if opts.File == "" {
		return log, noop, nil
	}
	file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.WithError(err).Warn("failed to open log file, logging to stderr")
		return log, noop, nil
	}
	log.SetOutput(file)
	return log, func() error {
		log.SetOutput(out)
		return file.Close()
	}, nil
}
