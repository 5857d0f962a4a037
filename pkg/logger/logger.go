package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

const (
	// FormatJSON writes one JSON object per record.
	FormatJSON = "json"

	// FormatText writes logfmt-style records for local development.
	FormatText = "text"
)

// Options configures a structured logger.
type Options struct {
	// Module is the name of the application using the logger.
	Module string

	// Version of the application (e.g., "v1.0.0").
	Version string

	// Level as a string (e.g., "debug", "info", "warn", "error").
	Level string

	// Format is FormatJSON (default) or FormatText.
	Format string

	// Output defaults to stderr.
	Output io.Writer
}

// New creates a structured logger from opts.
// Module name and version are included in the logger's context.
// AddSource is enabled for debug level logging only.
func New(opts Options) *slog.Logger {
	lev := ParseLogLevel(opts.Level)
	ho := &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var h slog.Handler
	if ParseFormat(opts.Format) == FormatText {
		h = slog.NewTextHandler(out, ho)
	} else {
		h = slog.NewJSONHandler(out, ho)
	}

	return slog.New(h).With("module", opts.Module, "version", opts.Version)
}

// NewLogLogger creates a standard library log.Logger that writes through slog
// at the given level. It feeds http.Server's ErrorLog.
func NewLogLogger(level slog.Level, withSource bool) *log.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: withSource,
	})

	return slog.NewLogLogger(handler, level)
}

// SetDefault builds a logger from opts and makes it the slog default.
func SetDefault(opts Options) {
	slog.SetDefault(New(opts))
}

// ParseLogLevel converts a string representation of a log level into a slog.Level.
// Unrecognized strings map to slog.LevelInfo.
func ParseLogLevel(level string) slog.Level {
	var lev slog.Level

	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lev = slog.LevelDebug
	case "warn", "warning":
		lev = slog.LevelWarn
	case "error":
		lev = slog.LevelError
	default:
		lev = slog.LevelInfo
	}

	return lev
}

// ParseFormat normalizes a format name. Anything but "text" is JSON.
func ParseFormat(format string) string {
	if strings.EqualFold(strings.TrimSpace(format), FormatText) {
		return FormatText
	}
	return FormatJSON
}
