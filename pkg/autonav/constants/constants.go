// Package constants defines shared constants and environment switches
// used throughout the autonav engine and its host bindings.
package constants

import "os"

// DebugEnvVar raises the engine's internal logger to debug level when set.
const DebugEnvVar = "AUTONAV_DEBUG"

// LogLevelEnvVar sets the application logger level ("debug", "info", ...).
const LogLevelEnvVar = "AUTONAV_LOG_LEVEL"

// IsDebug returns true if AUTONAV_DEBUG is set to a non-empty value.
func IsDebug() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// LogLevel returns AUTONAV_LOG_LEVEL, or "info" when unset.
func LogLevel() string {
	if level := os.Getenv(LogLevelEnvVar); level != "" {
		return level
	}
	return "info"
}

// Default sizes.
const (
	DefaultRequestQueue = 16 // Buffered navigation requests awaiting the router loop
	DefaultPopCount     = 1  // Pop count when a declarative step omits one
)

// Step operation names used by declarative action files.
const (
	OpPop         = "pop"
	OpPopUntil    = "pop_until"
	OpPopToRoot   = "pop_to_root"
	OpPush        = "push"
	OpBufferPush  = "buffer_push"
	OpFlushBuffer = "flush_buffer"
	OpRemove      = "remove"
	OpLog         = "log"
)
