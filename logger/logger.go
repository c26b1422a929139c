package logger

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

var l = stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile))

func init() {
	if envBool(envDebug, false) {
		stdr.SetVerbosity(1)
	}
	if v, ok := envInt(envLogLevel); ok {
		stdr.SetVerbosity(v)
	}
}

// ReplaceLogger swaps the package logger for a custom logr.Logger.
func ReplaceLogger(logger logr.Logger) {
	l = logger
}

// GetLogger returns a named logger backed by the package logger.
func GetLogger(name string) logr.Logger {
	return l.WithName(name)
}

func Info(msg string, keysAndValues ...interface{}) {
	l.Info(msg, keysAndValues...)
}

func Debug(msg string, keysAndValues ...interface{}) {
	l.V(1).Info(msg, keysAndValues...)
}

func Error(err error, msg string, keysAndValues ...interface{}) {
	l.Error(err, msg, keysAndValues...)
}
