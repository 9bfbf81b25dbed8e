package logrus

import (
	"io"

	"github.com/raykavin/plotspec/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Adapter exposes a logrus entry through logger.Logger
type Adapter struct {
	entry *logrus.Entry
}

// NewAdapter wraps a logrus logger
func NewAdapter(log *logrus.Logger) *Adapter {
	return &Adapter{entry: logrus.NewEntry(log)}
}

// New creates a logrus logger writing to w with the given level name and
// formatter
func New(w io.Writer, level string, json bool) (*Adapter, error) {
	log := logrus.New()
	log.SetOutput(w)
	if level != "" {
		parsed, err := logger.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		log.SetLevel(toLogrusLevel(parsed))
	}
	if json {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return NewAdapter(log), nil
}

func (l *Adapter) WithField(key string, value any) logger.Logger {
	return &Adapter{entry: l.entry.WithField(key, value)}
}

func (l *Adapter) WithFields(fields map[string]any) logger.Logger {
	return &Adapter{entry: l.entry.WithFields(fields)}
}

func (l *Adapter) WithError(err error) logger.Logger {
	return &Adapter{entry: l.entry.WithError(err)}
}

func (l *Adapter) Trace(args ...any) { l.entry.Trace(args...) }
func (l *Adapter) Debug(args ...any) { l.entry.Debug(args...) }
func (l *Adapter) Info(args ...any)  { l.entry.Info(args...) }
func (l *Adapter) Warn(args ...any)  { l.entry.Warn(args...) }
func (l *Adapter) Error(args ...any) { l.entry.Error(args...) }

func (l *Adapter) Tracef(format string, args ...any) { l.entry.Tracef(format, args...) }
func (l *Adapter) Debugf(format string, args ...any) { l.entry.Debugf(format, args...) }
func (l *Adapter) Infof(format string, args ...any)  { l.entry.Infof(format, args...) }
func (l *Adapter) Warnf(format string, args ...any)  { l.entry.Warnf(format, args...) }
func (l *Adapter) Errorf(format string, args ...any) { l.entry.Errorf(format, args...) }

// SetLevel implements logger.Logger. The level is shared by every entry
// derived from the same logrus logger.
func (l *Adapter) SetLevel(level logger.Level) {
	l.entry.Logger.SetLevel(toLogrusLevel(level))
}

// GetLevel implements logger.Logger.
func (l *Adapter) GetLevel() logger.Level {
	switch l.entry.Logger.GetLevel() {
	case logrus.TraceLevel:
		return logger.TraceLevel
	case logrus.DebugLevel:
		return logger.DebugLevel
	case logrus.InfoLevel:
		return logger.InfoLevel
	case logrus.WarnLevel:
		return logger.WarnLevel
	default:
		return logger.ErrorLevel
	}
}

func toLogrusLevel(level logger.Level) logrus.Level {
	switch level {
	case logger.TraceLevel:
		return logrus.TraceLevel
	case logger.DebugLevel:
		return logrus.DebugLevel
	case logger.InfoLevel:
		return logrus.InfoLevel
	case logger.WarnLevel:
		return logrus.WarnLevel
	case logger.Disabled:
		return logrus.PanicLevel
	default:
		return logrus.ErrorLevel
	}
}
