package logger

import (
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/huynhanx03/go-collections/pkg/settings"
)

// New builds a zap logger writing human-readable lines to stderr and, when
// cfg.FileLogName is set, JSON lines to a rotating file.
func New(cfg settings.Logger) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.LogLevel != "" {
		l, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse log level %q", cfg.LogLevel)
		}
		level = l
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	consoleCfg := encCfg
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stderr), level),
	}
	if cfg.FileLogName != "" {
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(fileWriter(cfg)), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// fileWriter returns the rotating file sink for cfg.
func fileWriter(cfg settings.Logger) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.FileLogName,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}
