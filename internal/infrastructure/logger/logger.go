package logger

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger *zap.Logger
	once         sync.Once
)

// Init builds the process logger. Only the first call has an effect.
//
// Supported env vars (via FromEnv):
//   - APP_ENV (production => JSON + sampling, anything else => console)
//   - LOG_LEVEL (debug, info, warn, error; default info)
func Init(environment, level string) *zap.Logger {
	once.Do(func() {
		var cfg zap.Config
		if environment == "production" {
			cfg = zap.NewProductionConfig()
			cfg.EncoderConfig.TimeKey = "timestamp"
			cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			cfg.DisableStacktrace = true
			cfg.Sampling = &zap.SamplingConfig{
				Initial:    100,
				Thereafter: 100,
			}
		} else {
			cfg = zap.NewDevelopmentConfig()
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}

		l, err := cfg.Build(zap.AddCaller())
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		globalLogger = l
		zap.ReplaceGlobals(globalLogger)
	})
	return globalLogger
}

// FromEnv initializes the logger from APP_ENV and LOG_LEVEL.
func FromEnv() *zap.Logger {
	return Init(strings.TrimSpace(os.Getenv("APP_ENV")), strings.TrimSpace(os.Getenv("LOG_LEVEL")))
}

// Get returns the process logger, or a no-op logger if Init was never called.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Named returns a child of the process logger tagged with a component name,
// e.g. "order.usecase".
func Named(component string) *zap.Logger {
	return Get().Named(component)
}

// Sync flushes buffered entries.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
