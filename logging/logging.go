// Package logging builds the charmbracelet loggers used across the runtime.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures New.
type Options struct {
	Level  string
	Prefix string
	// Caller adds file:line to each entry.
	Caller bool
}

// New returns a logger writing to w. An empty level means info.
func New(w io.Writer, opts Options) (*log.Logger, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		var err error
		level, err = log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
	}

	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    opts.Caller,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return l, nil
}

var (
	once     sync.Once
	fallback *log.Logger
)

// Default is a stderr logger at info level, created on first use.
func Default() *log.Logger {
	once.Do(func() {
		fallback, _ = New(os.Stderr, Options{Prefix: "game2d"})
	})
	return fallback
}
