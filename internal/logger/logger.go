package logger

import (
	"sync"

	"go.uber.org/zap"

	"github.com/cookbookd/backend/config"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// Init builds the global logger. Production uses the JSON encoder,
// everything else the human-readable development encoder.
func Init() {
	once.Do(func() {
		var (
			l   *zap.Logger
			err error
		)
		if config.IsProduction() {
			l, err = zap.NewProduction()
		} else {
			l, err = zap.NewDevelopment()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		logger = l
		zap.ReplaceGlobals(l)
	})
}

// L returns the global logger.
func L() *zap.Logger {
	if logger == nil {
		Init()
	}
	return logger
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
