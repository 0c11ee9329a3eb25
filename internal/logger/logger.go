package logger

import (
	"os"

	"github.com/WhileEndless/go-sbnet/internal/config"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger writing to stderr using settings from config.
// The "auto" format picks the console encoder when stderr is a terminal.
func New(cfg *config.Config) (*zap.Logger, error) {
	return newWithSink(cfg, zapcore.Lock(os.Stderr), isatty.IsTerminal(os.Stderr.Fd()))
}

func newWithSink(cfg *config.Config, sink zapcore.WriteSyncer, terminal bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch {
	case cfg.LogFormat == "console", cfg.LogFormat == "auto" && terminal:
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if !terminal {
			encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	default:
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, sink, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}
