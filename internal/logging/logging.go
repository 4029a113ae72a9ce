package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/decline-insights/internal/config"
)

// SetupLogging builds the process logger. cfg is expected to be validated;
// an unparseable level falls back to info.
func SetupLogging(cfg config.Logger, out io.Writer) *logrus.Logger {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	var formatter logrus.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}
	if cfg.Format == "text" {
		formatter = &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		}
	}

	logger := logrus.Logger{
		Formatter: formatter,
		Out:       out,
		Hooks:     make(logrus.LevelHooks),
		Level:     level,
	}

	return &logger
}

// FieldHook stamps a fixed field onto every entry the logger emits.
type FieldHook struct {
	Key   string
	Value interface{}
}

func (h FieldHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h FieldHook) Fire(entry *logrus.Entry) error {
	entry.Data[h.Key] = h.Value
	return nil
}
