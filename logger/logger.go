package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	projectLogger *logrus.Logger
	once          sync.Once
)

// GetProjectLogger returns the logger shared by every clave package.
func GetProjectLogger() *logrus.Logger {
	once.Do(func() {
		projectLogger = logrus.New()
		projectLogger.Out = os.Stderr
		projectLogger.Level = logrus.InfoLevel
		projectLogger.Formatter = &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05.000",
		}
	})
	return projectLogger
}

// Configure sets the level and destination of the project logger. An empty
// level leaves the current level untouched.
func Configure(level string, out io.Writer) error {
	logger := GetProjectLogger()
	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		logger.SetLevel(lvl)
	}
	if out != nil {
		logger.SetOutput(out)
	}
	return nil
}
