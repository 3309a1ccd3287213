package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"meddoc-validate/internal/domain"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// AppLogger implements the domain.Logger interface
type AppLogger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a new logger instance for the given level string
func NewLogger(levelStr string) domain.Logger {
	return &AppLogger{
		level: parseLogLevel(levelStr),
		out:   log.New(os.Stdout, "", 0),
	}
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	if l.level <= DEBUG {
		l.write("DEBUG", msg, fields...)
	}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	if l.level <= INFO {
		l.write("INFO", msg, fields...)
	}
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	if l.level <= WARN {
		l.write("WARN", msg, fields...)
	}
}

// Error logs an error message with its cause first in the field list
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	if l.level <= ERROR {
		all := append([]interface{}{"error", err}, fields...)
		l.write("ERROR", msg, all...)
	}
}

func (l *AppLogger) write(level, msg string, fields ...interface{}) {
	line := fmt.Sprintf("[%s] %s: %s", time.Now().Format("2006-01-02 15:04:05"), level, msg)

	if len(fields) > 0 {
		pairs := make([]string, 0, len(fields)/2)
		for i := 0; i+1 < len(fields); i += 2 {
			pairs = append(pairs, fmt.Sprintf("%v=%v", fields[i], fields[i+1]))
		}
		if len(pairs) > 0 {
			line += " " + strings.Join(pairs, " ")
		}
	}

	l.out.Println(line)
}

// parseLogLevel converts a string log level to a LogLevel value
func parseLogLevel(levelStr string) LogLevel {
	switch strings.ToLower(levelStr) {
	case "debug":
		return DEBUG
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}
