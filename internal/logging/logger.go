// Package logging provides structured file logging for officedesk.
// The TUI owns stdout, so log output always goes to a file; old log
// files are cleaned up on startup.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config configures the logger.
type Config struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string
	// LogDir is the directory to write log files.
	LogDir string
	// MaxLogFiles is the maximum number of log files to keep.
	MaxLogFiles int
	// MaxLogAge is the maximum age of log files before cleanup.
	MaxLogAge time.Duration
}

// DefaultConfig returns default logging configuration rooted at dir.
func DefaultConfig(dir string) *Config {
	return &Config{
		Level:       "info",
		LogDir:      dir,
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
	}
}

// Logger is a structured logger writing to a timestamped file.
type Logger struct {
	zap     *zap.Logger
	config  *Config
	logPath string
	mu      sync.Mutex
}

// New creates a new logger with the given configuration.
func New(config *Config) (*Logger, error) {
	if config == nil {
		return nil, fmt.Errorf("logging config is nil")
	}

	if err := os.MkdirAll(config.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(config.LogDir,
		fmt.Sprintf("officedesk_%s.log", time.Now().Format("20060102_150405")))
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	level, err := zapcore.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(logFile),
		level,
	)

	logger := &Logger{
		zap:     zap.New(core),
		config:  config,
		logPath: logPath,
	}

	go logger.Cleanup()

	return logger, nil
}

// NewNoop returns a logger that discards everything. Used before the
// real logger is configured and in tests.
func NewNoop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

// Path returns the path of the current log file.
func (l *Logger) Path() string {
	return l.logPath
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zap.Debug(msg, fields...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

// Cleanup removes log files beyond MaxLogFiles or older than MaxLogAge.
func (l *Logger) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.config == nil || l.config.LogDir == "" {
		return
	}

	entries, err := os.ReadDir(l.config.LogDir)
	if err != nil {
		return
	}

	type logFile struct {
		path    string
		modTime time.Time
	}

	var files []logFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "officedesk_") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{
			path:    filepath.Join(l.config.LogDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	// Newest first
	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.After(files[j].modTime)
	})

	cutoff := time.Now().Add(-l.config.MaxLogAge)
	for i, f := range files {
		if f.path == l.logPath {
			continue
		}
		tooMany := l.config.MaxLogFiles > 0 && i >= l.config.MaxLogFiles
		tooOld := l.config.MaxLogAge > 0 && f.modTime.Before(cutoff)
		if tooMany || tooOld {
			_ = os.Remove(f.path)
		}
	}
}
