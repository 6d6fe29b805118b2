// Package logger provides a small leveled logger writing to a file and stdout.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is a printf-style leveled logger. Consumers depend on a local
// 3-method interface, not on this type.
type Logger struct {
	out   *log.Logger
	file  *os.File
	level Level
}

// New creates a logger writing to filePath and stdout. level is one of
// "debug", "info", "warn", "error" (default "info").
func New(filePath, level string) (*Logger, error) {
	var writers []io.Writer
	writers = append(writers, os.Stdout)

	var file *os.File
	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	return &Logger{
		out:   log.New(io.MultiWriter(writers...), "", log.LstdFlags),
		file:  file,
		level: parseLevel(level),
	}, nil
}

func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Close releases the underlying log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) logf(lvl Level, tag, format string, v ...interface{}) {
	if lvl < l.level {
		return
	}
	l.out.Printf(tag+" "+format, v...)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(LevelDebug, "[DEBUG]", format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(LevelInfo, "[INFO]", format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(LevelWarn, "[WARN]", format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(LevelError, "[ERROR]", format, v...)
}

// Fatal logs at error level and exits the process.
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.logf(LevelError, "[FATAL]", format, v...)
	l.Close()
	os.Exit(1)
}
