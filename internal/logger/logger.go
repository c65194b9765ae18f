package logger

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// New returns a JSON logrus.Logger whose level follows the environment name.
func New(env string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetLevel(parseLevel(env))
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	return log
}

// IsDevelopment reports whether env names a local or dev deployment.
func IsDevelopment(env string) bool {
	switch strings.ToLower(env) {
	case "local", "dev":
		return true
	}
	return false
}

func parseLevel(env string) logrus.Level {
	if IsDevelopment(env) {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}
