// Package logging builds the go-belt logger used throughout codecflags.
//
// Logs always go to stderr: stdout carries the flag assignments that the
// calling build script evals. An optional log file receives an uncolored
// copy of every entry.
package logging

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/facebookincubator/go-belt/tool/logger"
	beltlogrus "github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/sirupsen/logrus"

	"github.com/backmassage/codecflags/internal/config"
	"github.com/backmassage/codecflags/internal/term"
)

const timestampFormat = "2006-01-02 15:04:05"

// Logger is the closable logger returned by [NewLogger]. Close flushes
// pending entries and closes the log file if one was opened.
type Logger struct {
	logger.Logger
	file *os.File
}

// NewLogger builds a logger writing to stderr at cfg.LogLevel, colored per
// cfg.ColorMode, and appending to cfg.LogFile when set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *config.Config, out *os.File) (*Logger, error) {
	colors := term.ColorsEnabled(cfg.ColorMode, out)

	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrusLevel(cfg.LogLevel))
	l.SetFormatter(&logrus.TextFormatter{
		ForceColors:     colors,
		DisableColors:   !colors,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})

	result := &Logger{}
	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.AddHook(&fileHook{w: f})
		result.file = f
	}

	result.Logger = beltlogrus.New(l).WithLevel(cfg.LogLevel)
	return result, nil
}

// Close flushes the logger and closes the log file if one was opened.
func (l *Logger) Close() error {
	l.Logger.Flush(context.Background())
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// WithContext installs l as the context logger and as logger.Default so
// package-level calls such as logger.Debugf(ctx, ...) reach it.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	logger.Default = func() logger.Logger {
		return l.Logger
	}
	return logger.CtxWithLogger(ctx, l.Logger)
}

// logrusLevel maps a go-belt level onto logrus so that entries below the
// configured level are dropped by logrus itself.
func logrusLevel(level logger.Level) logrus.Level {
	switch level {
	case logger.LevelTrace:
		return logrus.TraceLevel
	case logger.LevelDebug:
		return logrus.DebugLevel
	case logger.LevelInfo:
		return logrus.InfoLevel
	case logger.LevelWarning:
		return logrus.WarnLevel
	case logger.LevelError:
		return logrus.ErrorLevel
	case logger.LevelPanic:
		return logrus.PanicLevel
	case logger.LevelFatal:
		return logrus.FatalLevel
	default:
		return logrus.WarnLevel
	}
}

// fileHook mirrors every entry to w without colors.
type fileHook struct {
	mu sync.Mutex
	w  io.Writer
}

var plainFormatter = &logrus.TextFormatter{
	DisableColors:   true,
	FullTimestamp:   true,
	TimestampFormat: timestampFormat,
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileHook) Fire(entry *logrus.Entry) error {
	b, err := plainFormatter.Format(entry)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(b)
	return err
}
