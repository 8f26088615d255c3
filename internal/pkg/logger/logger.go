package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Error(msg string, err error)
	Warn(msg string)
	Info(msg string)
	Debug(msg string)
}

type logrusLogger struct {
	log *logrus.Logger
}

var (
	loggerInstance *logrusLogger
	once           sync.Once
)

// New creates a new singleton instance of the logrus-backed logger.
func New() Logger {
	once.Do(func() {
		l := logrus.New()
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		loggerInstance = &logrusLogger{log: l}
	})
	return loggerInstance
}

func (l *logrusLogger) Error(msg string, err error) {
	if err != nil {
		l.log.WithError(err).Error(msg)
		return
	}
	l.log.Error(msg)
}

func (l *logrusLogger) Warn(msg string) {
	l.log.Warn(msg)
}

func (l *logrusLogger) Info(msg string) {
	l.log.Info(msg)
}

func (l *logrusLogger) Debug(msg string) {
	l.log.Debug(msg)
}
