package logger

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	DefaultLevel = logrus.WarnLevel
)

// New builds the diagnostics logger. Task output goes to stdout elsewhere; this
// logger is meant for stderr. An unparsable level falls back to DefaultLevel.
func New(out io.Writer, level, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "ts",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	default:
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			FullTimestamp:    true,
			TimestampFormat:  time.RFC3339,
			QuoteEmptyFields: true,
		})
	}

	l.SetLevel(DefaultLevel)
	if level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			l.SetLevel(lvl)
		}
	}

	return l
}

// WithInvocationID tags every entry of one CLI run with the same id.
func WithInvocationID(l *logrus.Logger, id string) *logrus.Entry {
	if id == "" {
		return logrus.NewEntry(l)
	}
	return l.WithField("invocation_id", id)
}
