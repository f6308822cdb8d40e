// Package logging builds zerolog loggers for the command line tool.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum log level to output.
	Level string
	// Format is the output format (auto, json, console).
	Format string
	// Output is stderr, stdout, discard, or a file path.
	Output string
	// NoColor disables color output in console mode.
	NoColor bool
	// Fields are added to every event.
	Fields map[string]string
}

// DefaultConfig returns info-level auto-format logging to stderr.
func DefaultConfig() Config {
	return Config{
		Level:   "info",
		Format:  "auto",
		Output:  "stderr",
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// New creates a logger from cfg. The returned closer releases a log file, if one was opened.
func New(cfg Config) (zerolog.Logger, io.Closer) {
	out, closer := openOutput(cfg.Output)

	level := ParseLevel(cfg.Level)
	logger := zerolog.New(writer(out, cfg)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if len(cfg.Fields) > 0 {
		ctx := logger.With()
		for k, v := range cfg.Fields {
			ctx = ctx.Str(k, v)
		}
		logger = ctx.Logger()
	}
	return logger, closer
}

// ParseLevel parses a level name, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	switch level {
	case "":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "off", "none":
		return zerolog.Disabled
	}
	if l, err := zerolog.ParseLevel(level); err == nil {
		return l
	}
	return zerolog.InfoLevel
}

func openOutput(output string) (io.Writer, io.Closer) {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr, nopCloser{}
	case "stdout":
		return os.Stdout, nopCloser{}
	case "discard", "none":
		return io.Discard, nopCloser{}
	}
	file, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		// Fall back to stderr
		return os.Stderr, nopCloser{}
	}
	return file, file
}

func writer(out io.Writer, cfg Config) io.Writer {
	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = "console"
		}
	}
	if format == "console" || format == "pretty" {
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}
	}
	return out
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
