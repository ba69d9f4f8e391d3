package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger: human-readable text in
// development, JSON everywhere else.
func Setup(env string) {
	logrus.SetOutput(os.Stdout)
	if env == "development" {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
