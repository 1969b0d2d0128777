package autonav

import (
	"io"
	"log/slog"

	"github.com/BrandonKowalski/autonav/pkg/autonav/constants"
	"github.com/BrandonKowalski/autonav/pkg/autonav/internal"
)

// LogOptions configures the package loggers. Call ConfigureLogging before
// creating an Engine for the settings to take effect.
type LogOptions struct {
	LogPath  string    // Full path for a log file (creates parent directories)
	Output   io.Writer // Console writer (default: os.Stdout)
	Level    string    // Application log level ("debug", "info", "warn", "error")
	Internal bool      // Log engine internals at debug level
}

// ConfigureLogging applies options. AUTONAV_DEBUG enables engine debug
// logging and AUTONAV_LOG_LEVEL is used when options.Level is empty.
func ConfigureLogging(options LogOptions) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.Output != nil {
		internal.SetOutput(options.Output)
	}

	level := options.Level
	if level == "" {
		level = constants.LogLevel()
	}
	internal.SetRawLogLevel(level)

	if options.Internal || constants.IsDebug() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum level of the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// CloseLogger closes the log file, if any.
func CloseLogger() {
	internal.CloseLogger()
}
