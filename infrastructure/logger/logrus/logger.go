// ABOUTME: Logrus implementation of the Logger interface
// ABOUTME: Writes JSON to stdout, or to a rotated file when one is configured

package logrus

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger implements the structured Logger interface over logrus.
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a JSON logger writing to stdout. When logFile is
// non-empty, output goes to that file instead, rotated by lumberjack so no
// external logrotate job is needed.
func NewLogger(logFile string) *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)

	var out io.Writer = os.Stdout
	if logFile != "" {
		out = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // MB
			MaxBackups: 7,
			MaxAge:     14, // days
			Compress:   true,
		}
	}
	log.SetOutput(out)

	return &Logger{log: log}
}

// Debug logs a debug message with structured fields.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
