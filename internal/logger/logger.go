package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/aliskhannn/hiragana-quiz/internal/config"
)

// New builds a logger that writes to stderr so it never mixes with the quiz on stdout.
func New(cfg *config.Config) (*zap.Logger, error) {
	return newLogger(cfg, term.IsTerminal(int(os.Stderr.Fd())))
}

func newLogger(cfg *config.Config, isTTY bool) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	// Plain console output only makes sense for a human watching a terminal.
	if !isTTY {
		zcfg.Encoding = "json"
		zcfg.EncoderConfig = zap.NewProductionEncoderConfig()
	}

	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
