// Package logging configures slog for console and weekly rotating file output.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// RotatingLogger writes to one log file per ISO week and removes files
// older than the retention period.
type RotatingLogger struct {
	logDir      string
	currentFile *os.File
	currentWeek string
	retention   time.Duration
	mu          sync.Mutex
	ctx         context.Context
	cancel      context.CancelFunc
	cleanupDone chan struct{}
}

// NewRotatingLogger creates a new rotating logger instance
func NewRotatingLogger(logDir string, retentionWeeks int) *RotatingLogger {
	ctx, cancel := context.WithCancel(context.Background())
	return &RotatingLogger{
		logDir:      logDir,
		retention:   time.Duration(retentionWeeks) * 7 * 24 * time.Hour,
		ctx:         ctx,
		cancel:      cancel,
		cleanupDone: make(chan struct{}),
	}
}

// getWeekKey returns the week key in YYYY-Www format (ISO week)
func getWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// doRotate opens the log file for targetWeek (caller must hold the lock)
func (rl *RotatingLogger) doRotate(targetWeek string) error {
	if rl.currentFile != nil {
		if err := rl.currentFile.Close(); err != nil {
			fmt.Printf("Failed to close log file during rotation: %v\n", err)
		}
	}

	logPath := filepath.Join(rl.logDir, fmt.Sprintf("app-%s.log", targetWeek))
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	rl.currentFile = file
	rl.currentWeek = targetWeek
	return nil
}

// Write writes data to the current log file, rotating on week boundaries
func (rl *RotatingLogger) Write(p []byte) (n int, err error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	currentWeek := getWeekKey(time.Now())
	if rl.currentWeek != currentWeek {
		if err = rl.doRotate(currentWeek); err != nil {
			return 0, err
		}
	}

	if rl.currentFile == nil {
		return 0, fmt.Errorf("no log file available")
	}

	return rl.currentFile.Write(p)
}

// cleanupOldLogs removes log files older than the retention period
func (rl *RotatingLogger) cleanupOldLogs() error {
	entries, err := os.ReadDir(rl.logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	cutoff := time.Now().Add(-rl.retention)
	var deletedCount int

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "app-") || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(rl.logDir, entry.Name())); err == nil {
				deletedCount++
			}
		}
	}

	if deletedCount > 0 {
		// Console output to avoid recursing into the logger being cleaned
		fmt.Printf("Cleaned up %d old log files\n", deletedCount)
	}

	return nil
}

// Close closes the rotating logger and stops background cleanup
func (rl *RotatingLogger) Close() error {
	rl.cancel()

	select {
	case <-rl.cleanupDone:
	case <-time.After(time.Second):
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.currentFile != nil {
		return rl.currentFile.Close()
	}
	return nil
}

// SetupLogger configures slog to log to both console and rotating file
func SetupLogger(logDir string) *slog.Logger {
	return SetupLoggerWithRetention(logDir, 4) // Default 4 weeks retention
}

// SetupLoggerWithRetention configures slog with a custom retention period
func SetupLoggerWithRetention(logDir string, retentionWeeks int) *slog.Logger {
	consoleHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if err := os.MkdirAll(logDir, 0755); err != nil {
		// If we can't create the logs directory, just log to console
		consoleLogger := slog.New(consoleHandler)
		consoleLogger.Error("Failed to create logs directory", "error", err)
		return consoleLogger
	}

	rotatingLogger := NewRotatingLogger(logDir, retentionWeeks)

	rotatingLogger.mu.Lock()
	rotateErr := rotatingLogger.doRotate(getWeekKey(time.Now()))
	rotatingLogger.mu.Unlock()
	if rotateErr != nil {
		consoleLogger := slog.New(consoleHandler)
		consoleLogger.Error("Failed to initialize rotating logger", "error", rotateErr)
		return consoleLogger
	}

	// Retention cleanup runs daily until the logger context is cancelled
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		defer close(rotatingLogger.cleanupDone)

		for {
			select {
			case <-rotatingLogger.ctx.Done():
				return
			case <-ticker.C:
				if err := rotatingLogger.cleanupOldLogs(); err != nil {
					slog.Warn("Failed to cleanup old logs", "error", err)
				}
			}
		}
	}()

	// Console gets text format, file gets JSON format for better parsing
	fileHandler := slog.NewJSONHandler(rotatingLogger, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	return slog.New(&multiHandler{
		handlers: []slog.Handler{consoleHandler, fileHandler},
	})
}

// multiHandler implements slog.Handler to write to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.handlers {
		if h.Enabled(ctx, r.Level) {
			if err := h.Handle(ctx, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}
