package helpers

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a configured Logrus logger. When logFile is non-empty the
// file is opened in append mode and log lines are written there as well as to
// stdout; the file stays open for the life of the process.
func NewLogger(appName, env, logFile string) *logrus.Logger {
	logger := logrus.New()
	out := io.Writer(os.Stdout)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.WithError(err).Warnf("cannot open log file %s, logging to stdout only", logFile)
		} else {
			out = io.MultiWriter(os.Stdout, f)
		}
	}
	logger.SetOutput(out)
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return logger
}
