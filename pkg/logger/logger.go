package logger

import (
	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger is the minimal logging surface used across the application.
type Logger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// InfoFields and ErrorFields emit structured records with
	// top-level fields (request_id, method, path, ...).
	InfoFields(msg string, fields Fields)
	ErrorFields(msg string, fields Fields)
}

// Fields holds structured log fields.
type Fields map[string]any

// New creates a console logger at the given level. Unknown levels fall
// back to info.
func New(level string) Logger {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	return &gookitLogger{logger: slog.NewWithHandlers(h)}
}

type gookitLogger struct {
	logger *slog.Logger
}

func (l *gookitLogger) Debug(args ...any) { l.logger.Debug(args...) }
func (l *gookitLogger) Info(args ...any)  { l.logger.Info(args...) }
func (l *gookitLogger) Warn(args ...any)  { l.logger.Warn(args...) }
func (l *gookitLogger) Error(args ...any) { l.logger.Error(args...) }

func (l *gookitLogger) Debugf(format string, args ...any) { l.logger.Debugf(format, args...) }
func (l *gookitLogger) Infof(format string, args ...any)  { l.logger.Infof(format, args...) }
func (l *gookitLogger) Warnf(format string, args ...any)  { l.logger.Warnf(format, args...) }
func (l *gookitLogger) Errorf(format string, args ...any) { l.logger.Errorf(format, args...) }

func (l *gookitLogger) InfoFields(msg string, fields Fields) {
	l.logger.WithFields(slog.M(fields)).Info(msg)
}

func (l *gookitLogger) ErrorFields(msg string, fields Fields) {
	l.logger.WithFields(slog.M(fields)).Error(msg)
}
