package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/writer"
)

var (
	logger *logrus.Logger
	mu     sync.Mutex
)

var (
	outputLevels = []logrus.Level{logrus.InfoLevel, logrus.DebugLevel, logrus.TraceLevel}
	errorLevels  = []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel}
)

// InitLogger (re)configures the process-wide logger. Info and below go to
// stdout, warnings and above to stderr.
func InitLogger(level logrus.Level) *logrus.Logger {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		logger = logrus.New()
	}
	configure(logger, level, os.Stdout, os.Stderr)
	return logger
}

// New returns a standalone logger with the same stream split as the
// process-wide one, writing to the given writers.
func New(level logrus.Level, stdout, stderr io.Writer) *logrus.Logger {
	l := logrus.New()
	configure(l, level, stdout, stderr)
	return l
}

func configure(l *logrus.Logger, level logrus.Level, stdout, stderr io.Writer) {
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetOutput(io.Discard)
	l.ReplaceHooks(make(logrus.LevelHooks))
	l.AddHook(&writer.Hook{Writer: stdout, LogLevels: outputLevels})
	l.AddHook(&writer.Hook{Writer: stderr, LogLevels: errorLevels})
}

// GetLogger returns the process-wide logger, initialising it at info level
// on first use.
func GetLogger() *logrus.Logger {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l != nil {
		return l
	}
	return InitLogger(logrus.InfoLevel)
}

// ParseLevel maps a configured level name to a logrus level, falling back
// to info for unknown names.
func ParseLevel(name string) logrus.Level {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
