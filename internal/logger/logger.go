// Package logger builds the logrus loggers used across tftlookup.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New creates a logger writing to output at the given level.
// Unknown levels fall back to info
func New(level string, output io.Writer) *logrus.Logger {
	if output == nil {
		output = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(output)

	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)

	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
		PadLevelText:  true,
	})

	return log
}

// NewFile creates a logger appending to path. The terminal belongs to the
// TUI, so interactive runs log here instead of stderr
func NewFile(level, path string) (*logrus.Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(level, f), f, nil
}

// Discard returns a logger that drops everything
func Discard() *logrus.Logger {
	return New("panic", io.Discard)
}
