// Package utils provides utility functions for the fabricctl CLI.
// This file contains logging setup and Resty logger integration utilities.
package utils

import (
	"io"
	"os"

	"github.com/concave-dev/fabricctl/cmd/fabricctl/config"
	"github.com/concave-dev/fabricctl/internal/logging"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits of the --log-file sink
const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// RestyLogger implements resty.Logger interface and routes logs through structured logging
type RestyLogger struct{}

// Errorf routes error messages through structured logging.
func (s RestyLogger) Errorf(format string, v ...interface{}) {
	logging.Error(format, v...)
}

// Warnf routes warning messages through structured logging.
func (s RestyLogger) Warnf(format string, v ...interface{}) {
	logging.Warn(format, v...)
}

// Debugf routes debug messages through structured logging.
func (s RestyLogger) Debugf(format string, v ...interface{}) {
	logging.Debug(format, v...)
}

// logFile is the rotating sink opened for --log-file, kept so repeated
// SetupLogging calls reuse it
var logFile io.WriteCloser

// SetupLogging configures CLI logging behavior based on environment and config.
// Enables debug output when DEBUG=true. With --log-file every level at or
// above --log-level goes to a rotating file; otherwise logs below ERROR are
// suppressed so command output stays clean.
func SetupLogging() {
	// Check for DEBUG environment variable for debug logging
	if os.Getenv("DEBUG") == "true" {
		// Show debug output - restore normal logging and enable DEBUG level
		logging.RestoreOutput()
		logging.SetLevel("DEBUG")
		return
	}

	if config.Global.LogFile != "" {
		if logFile == nil {
			logFile = &lumberjack.Logger{
				Filename:   config.Global.LogFile,
				MaxSize:    logFileMaxSizeMB,
				MaxBackups: logFileMaxBackups,
				MaxAge:     logFileMaxAgeDays,
				Compress:   true,
			}
		}
		logging.SetLevel(config.Global.LogLevel)
		logging.SetOutput(logFile)
		return
	}

	// Configure our application logging level first
	logging.SetLevel(config.Global.LogLevel)
	// Suppress debug/info logs by default (only show errors)
	logging.SuppressOutput()
}

// CloseLogging flushes and closes the log file opened by SetupLogging, if any.
func CloseLogging() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
