package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"book-library-api/internal/config"
)

// New builds the application logger from configuration. Unknown levels fall back to info.
func New(cfg *config.Config) *logrus.Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput is New writing to out
func NewWithOutput(cfg *config.Config, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	level := logrus.InfoLevel
	format := "json"
	if cfg != nil {
		if parsed, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
			level = parsed
		}
		if cfg.Log.Format != "" {
			format = cfg.Log.Format
		}
	}
	logger.SetLevel(level)

	if format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	return logger
}
