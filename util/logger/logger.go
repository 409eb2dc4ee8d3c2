package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// New returns new configured logger writing to stderr
func New(lvl logrus.Level) *logrus.Logger {
	return NewWithOutput(os.Stderr, lvl)
}

// NewWithOutput returns new configured logger writing to <out>.
//
// Levels above logrus.TraceLevel are clamped to it.
func NewWithOutput(out io.Writer, lvl logrus.Level) *logrus.Logger {
	if lvl > logrus.TraceLevel {
		lvl = logrus.TraceLevel
	}
	formatter := prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.Stamp,
		ForceFormatting: true,
		DisableColors:   out != os.Stderr,
	}
	log := logrus.Logger{
		Out:       out,
		Formatter: &formatter,
		Level:     lvl,
		Hooks:     make(logrus.LevelHooks),
		ExitFunc:  os.Exit,
	}
	return &log
}
