package observability

import (
	"context"
	"fmt"

	"github.com/railzwaylabs/envelope/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewLevel(cfg config.Config) (zap.AtomicLevel, error) {
	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	return level, nil
}

func NewLogger(lc fx.Lifecycle, cfg config.Config, level zap.AtomicLevel) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Log.Format == "console" {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "ts"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	logger = logger.With(
		zap.String("app", cfg.AppName),
		zap.String("env", cfg.Environment),
	)

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// stderr sync fails on some platforms
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}

// WatchLogLevel applies log.level changes from the config file without a
// restart.
func WatchLogLevel(loader *config.Loader, level zap.AtomicLevel, log *zap.Logger) {
	watching := loader.OnChange(func(cfg config.Config) {
		next, err := zap.ParseAtomicLevel(cfg.Log.Level)
		if err != nil {
			log.Warn("ignoring invalid log level", zap.String("level", cfg.Log.Level), zap.Error(err))
			return
		}
		if next.Level() == level.Level() {
			return
		}
		level.SetLevel(next.Level())
		log.Info("log level changed", zap.Stringer("level", next.Level()))
	})
	if !watching {
		log.Debug("no config file in use, log level reload disabled")
	}
}
