// Package observability provides structured logging for the game.
package observability

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"maze-crawler/internal/config"
)

// NewLogger creates a structured logger from the given logging configuration.
// Output goes to a size-rotated file because the terminal belongs to the game
// screen; an empty cfg.File yields a logger that discards everything.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		if _, _, err := encoding(cfg); err != nil {
			return nil, err
		}
		return zap.NewNop(), nil
	}
	return newLogger(cfg, rotator(cfg))
}

// newLogger builds the logger over an arbitrary sink.
func newLogger(cfg config.LoggingConfig, w io.Writer) (*zap.Logger, error) {
	level, enc, err := encoding(cfg)
	if err != nil {
		return nil, err
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level)), nil
}

// encoding resolves the configured level and encoder.
func encoding(cfg config.LoggingConfig) (zapcore.Level, zapcore.Encoder, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return level, nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var encCfg zapcore.EncoderConfig
	switch cfg.Format {
	case "json":
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return level, zapcore.NewJSONEncoder(encCfg), nil
	case "console":
		encCfg = zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return level, zapcore.NewConsoleEncoder(encCfg), nil
	}
	return level, nil, fmt.Errorf("unknown log format %q", cfg.Format)
}

func rotator(cfg config.LoggingConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}
}
