// Package logging builds the service's slog logger: a console handler on
// stderr, optionally fanned out to a size-rotated log file.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds logging configuration. Field tags are relative to the
// parent's SHEET_LOG_ prefix.
type Config struct {
	Level          string `env:"LEVEL" envDefault:"info"`
	Format         string `env:"FORMAT" envDefault:"text"`
	File           string `env:"FILE"`
	FileMaxSizeMB  int    `env:"FILE_MAX_SIZE_MB" envDefault:"10"`
	FileMaxBackups int    `env:"FILE_MAX_BACKUPS" envDefault:"5"`
	FileMaxAgeDays int    `env:"FILE_MAX_AGE_DAYS" envDefault:"30"`
}

// Validate checks the level and format names
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, ok := parseLevel(c.Level); !ok {
		vb.Fieldf("Level", "unknown level %q", c.Level)
	}
	errors.ValidateEnum("Format", c.Format, []string{FormatText, FormatJSON}, vb)
	if c.File != "" && c.FileMaxSizeMB <= 0 {
		vb.Field("FileMaxSizeMB", "must be positive")
	}

	return vb.Build()
}

// New builds a logger writing to console, plus File when set. The returned
// closer releases the log file and is safe to call when there is none.
func New(cfg Config, console io.Writer) (*slog.Logger, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid logging config")
	}
	if console == nil {
		console = os.Stderr
	}

	level, _ := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	handlers := []slog.Handler{newHandler(console, cfg.Format, opts)}
	var closer io.Closer = nopCloser{}

	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.FileMaxSizeMB,
			MaxBackups: cfg.FileMaxBackups,
			MaxAge:     cfg.FileMaxAgeDays,
		}
		// files are always JSON so they can be shipped as-is
		handlers = append(handlers, slog.NewJSONHandler(file, opts))
		closer = file
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), closer, nil
	}
	return slog.New(&fanoutHandler{handlers: handlers}), closer, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newHandler(w io.Writer, format string, opts *slog.HandlerOptions) slog.Handler {
	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fanoutHandler writes each record to every handler enabled for it.
type fanoutHandler struct {
	handlers []slog.Handler
}

func (h *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, r.Level) {
			continue
		}
		if err := handler.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: handlers}
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &fanoutHandler{handlers: handlers}
}
