package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"

	FormatText = "text"
	FormatJSON = "json"
)

// Options selects the logger backend and where output goes.
type Options struct {
	Backend string
	Level   string
	Format  string

	// File, when set, receives the log through a rotating writer instead of
	// Output.
	File       string
	MaxSizeMB  int
	MaxBackups int

	// Output defaults to os.Stderr.
	Output io.Writer
}

// New builds a Logger from opts. The returned closer releases the log file,
// if any, and must be called on shutdown.
func New(opts Options) (Logger, io.Closer, error) {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			Compress:   true,
		}
		out = rotating
		closer = rotating
	}

	switch strings.ToLower(opts.Backend) {
	case "", BackendSlog:
		level, err := parseSlogLevel(opts.Level)
		if err != nil {
			return nil, nil, err
		}
		ho := &slog.HandlerOptions{Level: level}
		var h slog.Handler
		if opts.Format == FormatJSON {
			h = slog.NewJSONHandler(out, ho)
		} else {
			h = slog.NewTextHandler(out, ho)
		}
		return NewSlogLogger(slog.New(h)), closer, nil

	case BackendZap:
		level, err := zapcore.ParseLevel(levelOrDefault(opts.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("parse log level: %w", err)
		}
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		var enc zapcore.Encoder
		if opts.Format == FormatJSON {
			enc = zapcore.NewJSONEncoder(encCfg)
		} else {
			enc = zapcore.NewConsoleEncoder(encCfg)
		}
		core := zapcore.NewCore(enc, zapcore.AddSync(out), level)
		return NewZapLogger(zap.New(core)), closer, nil

	default:
		return nil, nil, fmt.Errorf("unknown log backend %q", opts.Backend)
	}
}

func levelOrDefault(s string) string {
	if s == "" {
		return "info"
	}
	return s
}

func parseSlogLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(levelOrDefault(s))); err != nil {
		return 0, fmt.Errorf("parse log level: %w", err)
	}
	return l, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
