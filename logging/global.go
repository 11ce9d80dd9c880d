package logging

import (
	"log/slog"
	"os"
)

type LoggingService struct {
	Logger *slog.Logger
}

var DefaultLoggingService *LoggingService

// InitLogger initializes the global logger instance
func InitLogger(logDir string) {
	DefaultLoggingService = &LoggingService{
		Logger: SetupLogger(logDir),
	}
	slog.SetDefault(DefaultLoggingService.Logger)
}

// InitLoggerWithRetention initializes the global logger with a custom
// log file retention period
func InitLoggerWithRetention(logDir string, retentionWeeks int) {
	DefaultLoggingService = &LoggingService{
		Logger: SetupLoggerWithRetention(logDir, retentionWeeks),
	}
	slog.SetDefault(DefaultLoggingService.Logger)
}

// Package-level functions for direct access

func Info(msg string, args ...any) {
	logWith(slog.LevelInfo, msg, args...)
}

func Error(msg string, args ...any) {
	logWith(slog.LevelError, msg, args...)
}

func Warn(msg string, args ...any) {
	logWith(slog.LevelWarn, msg, args...)
}

func Debug(msg string, args ...any) {
	logWith(slog.LevelDebug, msg, args...)
}

func logWith(level slog.Level, msg string, args ...any) {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		// Fallback to console logger if not initialized
		fallback := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		fallback.Log(nil, level, msg, args...)
		return
	}
	DefaultLoggingService.Logger.Log(nil, level, msg, args...)
}
