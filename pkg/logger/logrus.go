package logger

import (
	"github.com/sirupsen/logrus"
)

// LogrusLogger writes to a logrus logger. Every entry is tagged with the
// "pkg" field so helper output can be told apart from application output.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrus returns a LoggerImpl backed by l. If l is nil, the logrus
// standard logger is used.
func NewLogrus(l *logrus.Logger) *LogrusLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}

	return &LogrusLogger{
		entry: l.WithField("pkg", "osumi"),
	}
}

func (l *LogrusLogger) Trace(args ...interface{}) {
	l.entry.Trace(args...)
}

func (l *LogrusLogger) Tracef(format string, args ...interface{}) {
	l.entry.Tracef(format, args...)
}

func (l *LogrusLogger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *LogrusLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *LogrusLogger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *LogrusLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *LogrusLogger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *LogrusLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *LogrusLogger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *LogrusLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}
