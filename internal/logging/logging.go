// Package logging provides the process-wide arbor logger.
package logging

import (
	"sync"

	"github.com/ternarybob/arbor"
	arborcommon "github.com/ternarybob/arbor/common"
	"github.com/ternarybob/arbor/models"
)

// Options controls the console writer.
type Options struct {
	Level  string // trace, debug, info, warn, error
	Format string // "text" (logfmt) or "json"
}

var (
	globalLogger arbor.ILogger
	loggerMutex  sync.RWMutex
)

// Get returns the global logger. Before Setup it returns a console logger at
// warn level so early callers never get nil.
func Get() arbor.ILogger {
	loggerMutex.RLock()
	if globalLogger != nil {
		loggerMutex.RUnlock()
		return globalLogger
	}
	loggerMutex.RUnlock()

	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	if globalLogger == nil {
		globalLogger = arbor.NewLogger().
			WithConsoleWriter(writerConfig(Options{})).
			WithLevelFromString("warn")
	}
	return globalLogger
}

// Setup builds the logger from opts and installs it as the global instance.
func Setup(opts Options) arbor.ILogger {
	if opts.Level == "" {
		opts.Level = "warn"
	}
	logger := arbor.NewLogger().
		WithConsoleWriter(writerConfig(opts)).
		WithLevelFromString(opts.Level)

	loggerMutex.Lock()
	globalLogger = logger
	loggerMutex.Unlock()
	return logger
}

// Stop flushes buffered log entries. Safe to call more than once.
func Stop() {
	arborcommon.Stop()
}

func writerConfig(opts Options) models.WriterConfiguration {
	outputType := models.OutputFormatLogfmt
	if opts.Format == "json" {
		outputType = models.OutputFormatJSON
	}
	return models.WriterConfiguration{
		Type:       models.LogWriterTypeConsole,
		TimeFormat: "15:04:05.000",
		OutputType: outputType,
	}
}
