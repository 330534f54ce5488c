// Package logging adapts structured loggers to the title/details contract
// the builder reports through. Entries are fire-and-forget: implementations
// must never panic or block the caller on a failed write.
package logging

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DetailsKey is the structured field carrying an entry's details.
const DetailsKey = "details"

// Logger receives builder diagnostics.
type Logger interface {
	Debug(title, details string)
	Error(title, details string)
}

// Nop returns a Logger that discards every entry.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, string) {}
func (nopLogger) Error(string, string) {}

// NewZap wraps a zap logger. A nil logger yields Nop.
func NewZap(lggr *zap.Logger) Logger {
	if lggr == nil {
		return Nop()
	}
	return &zapLogger{lggr: lggr.WithOptions(zap.AddCallerSkip(1))}
}

type zapLogger struct {
	lggr *zap.Logger
}

func (l *zapLogger) Debug(title, details string) {
	l.lggr.Debug(title, zap.String(DetailsKey, details))
}

func (l *zapLogger) Error(title, details string) {
	l.lggr.Error(title, zap.String(DetailsKey, details))
}

// Config selects the zap preset and level used by New.
type Config struct {
	Level       string
	Development bool
}

// New builds a zap-backed Logger from cfg. An empty level means info.
func New(cfg Config) (Logger, *zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: parse level %q: %w", cfg.Level, err)
		}
		level = parsed
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.DisableStacktrace = true
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zcfg.Level.SetLevel(level)

	lggr, err := zcfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("logging: build zap logger: %w", err)
	}
	return NewZap(lggr), lggr, nil
}

// Details renders v as compact JSON for a log entry's details, falling back
// to fmt formatting when v cannot be marshalled.
func Details(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(payload)
}
