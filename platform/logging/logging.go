package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Init configures the standard logrus logger and returns it.
func Init(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
