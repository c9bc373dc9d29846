// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the dropcorr command.
//
// Development loggers write colored console lines; otherwise entries are
// JSON objects. Both share the same millisecond time layout.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeLayout is the timestamp format of every entry.
const TimeLayout = "2006-01-02 15:04:05.000"

// ErrBadLevel is returned for a level name zap does not know.
var ErrBadLevel = errors.New("logging: unknown level")

// New returns a logger writing to stderr at the given level
// ("debug", "info", "warn", "error"; empty means "info").
func New(level string, development bool) (*zap.Logger, error) {
	return NewTo(os.Stderr, level, development)
}

// NewTo is New with an explicit destination.
func NewTo(w io.Writer, level string, development bool) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if development {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = timeEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	} else {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = timeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	}
	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), lvl)

	opts := []zap.Option{zap.AddCaller()}
	if development {
		opts = append(opts, zap.Development())
	}

	return zap.New(core, opts...), nil
}

// ParseLevel maps a case-insensitive level name to a zapcore.Level.
func ParseLevel(level string) (zapcore.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return lvl, fmt.Errorf("%w: %q", ErrBadLevel, level)
	}

	return lvl, nil
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(TimeLayout))
}
