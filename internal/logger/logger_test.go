package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/aliskhannn/hiragana-quiz/internal/config"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		env   string
		level string
		want  zapcore.Level
	}{
		{"local", "debug", zapcore.DebugLevel},
		{"dev", "info", zapcore.InfoLevel},
		{"production", "warn", zapcore.WarnLevel},
		{"production", "error", zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		for _, isTTY := range []bool{true, false} {
			cfg := &config.Config{Env: tt.env, Log: config.Log{Level: tt.level}}

			l, err := newLogger(cfg, isTTY)
			if err != nil {
				t.Fatalf("newLogger(%s, %s, tty=%v): %v", tt.env, tt.level, isTTY, err)
			}

			if !l.Core().Enabled(tt.want) {
				t.Errorf("env=%s level=%s tty=%v: %s disabled", tt.env, tt.level, isTTY, tt.want)
			}
			if tt.want > zapcore.DebugLevel && l.Core().Enabled(tt.want-1) {
				t.Errorf("env=%s level=%s tty=%v: %s enabled", tt.env, tt.level, isTTY, tt.want-1)
			}
		}
	}
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{Env: "local", Log: config.Log{Level: "loud"}}

	if _, err := newLogger(cfg, false); err == nil {
		t.Error("newLogger accepted an unknown level")
	}
}
