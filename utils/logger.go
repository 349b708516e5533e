package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// Marketplace services, handlers and the GORM logger all write through the
// logrus standard logger configured here.
func init() {
	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	log.SetOutput(os.Stdout)
	// raised or lowered from log.level once config is loaded
	log.SetLevel(log.InfoLevel)
}

// SetLevel changes the global log level; unknown levels keep the current one
func SetLevel(level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		Warn("unknown log level, keeping current", map[string]any{"level": level})
		return
	}
	log.SetLevel(lvl)
}

// Debug is for per-query and per-request detail, off by default
func Debug(message string, fields map[string]any) {
	log.WithFields(fields).Debug(message)
}

// Info records completed operations such as settlements and startup
func Info(message string, fields map[string]any) {
	log.WithFields(fields).Info(message)
}

// Warn records rejected requests and recoverable oddities
func Warn(message string, fields map[string]any) {
	log.WithFields(fields).Warn(message)
}

// Error records storage failures and other 5xx causes
func Error(message string, fields map[string]any) {
	log.WithFields(fields).Error(message)
}

// Fatal is for startup failures; it exits the process
func Fatal(message string, fields map[string]any) {
	log.WithFields(fields).Fatal(message)
}
