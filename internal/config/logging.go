package config

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/ecoquest/internal/logging"
)

// Logger is the global zerolog logger instance.
//
//nolint:gochecknoglobals // Logger is intentionally global for application-wide structured logging
var Logger zerolog.Logger

// logMu protects Logger.
//
//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger sets Logger to a console logger on stderr at level (info when unparseable).
func InitLogger(level string) {
	logMu.Lock()
	defer logMu.Unlock()

	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(logging.ParseLevel(level)).
		With().
		Timestamp().
		Logger()
}

// SetLogger replaces Logger, typically with the one built from LoggingConfig.
func SetLogger(l zerolog.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	Logger = l
}

// GetLogger returns the global logger instance.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

//nolint:gochecknoinits // The package logger must exist before any configuration is loaded.
func init() {
	InitLogger("info")
}

// ToLoggingConfig converts the file settings to a logging.Config. A configured
// File switches the output to that file; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = outputTypeFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// GetLoggingConfig returns a copy of the global Logging settings. Callers apply
// flag overrides such as --debug on the copy.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
