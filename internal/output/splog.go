// Package output provides diagnostics logging and the rendering of check
// results.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SplogConfig configures where diagnostics go
type SplogConfig struct {
	// Writer receives console diagnostics as bare lines
	Writer io.Writer
	// LogFilePath enables a rotating log file holding every level when set
	LogFilePath string
	// Debug shows debug diagnostics on the console
	Debug bool
}

// consoleHandler writes messages without timestamps or level prefixes
type consoleHandler struct {
	writer io.Writer
	debug  bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level > slog.LevelDebug || h.debug
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *consoleHandler) WithGroup(_ string) slog.Handler { return h }

// teeHandler sends records to the console and the log file
type teeHandler struct {
	console slog.Handler
	file    slog.Handler
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.console.Enabled(ctx, level) || h.file.Enabled(ctx, level)
}

func (h *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.console.Enabled(ctx, record.Level) {
		if err := h.console.Handle(ctx, record); err != nil {
			return err
		}
	}
	if h.file.Enabled(ctx, record.Level) {
		return h.file.Handle(ctx, record)
	}
	return nil
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{console: h.console.WithAttrs(attrs), file: h.file.WithAttrs(attrs)}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{console: h.console.WithGroup(name), file: h.file.WithGroup(name)}
}

// envInt reads a positive integer setting, falling back to def
func envInt(key string, def int, allowZero bool) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v < 0 || (v == 0 && !allowZero) {
		return def
	}
	return v
}

// newRotatingFile creates the lumberjack sink, tuned by REPOSTAT_LOG_MAX_* variables
func newRotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    envInt("REPOSTAT_LOG_MAX_SIZE", 1, false), // megabytes
		MaxBackups: envInt("REPOSTAT_LOG_MAX_BACKUPS", 2, true),
		MaxAge:     envInt("REPOSTAT_LOG_MAX_AGE", 30, false), // days
	}
}

// Splog writes diagnostics to the console and, optionally, a rotating log file
type Splog struct {
	logger  *slog.Logger
	logFile io.Closer
}

// NewSplogWithConfig creates a splog from cfg
func NewSplogWithConfig(cfg SplogConfig) (*Splog, error) {
	splog := &Splog{}
	var handler slog.Handler = &consoleHandler{writer: cfg.Writer, debug: cfg.Debug}

	if cfg.LogFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		logFile := newRotatingFile(cfg.LogFilePath)
		splog.logFile = logFile

		handler = &teeHandler{
			console: handler,
			file: slog.NewTextHandler(logFile, &slog.HandlerOptions{
				Level: slog.LevelDebug,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.String(a.Key, a.Value.Time().Format("2006-01-02 15:04:05.000"))
					}
					return a
				},
			}),
		}
	}

	splog.logger = slog.New(handler)
	return splog, nil
}

func (s *Splog) log(level slog.Level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, msg)
}

// Error writes an error message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, "❌ "+format, args)
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, format, args)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logFile != nil {
		return s.logFile.Close()
	}
	return nil
}
