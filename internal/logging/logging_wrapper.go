package logging

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Command is a CLI action writing its report to w.
type Command func(ctx context.Context, w io.Writer) error

// LoggingWrapper runs handler with a fresh LogData in its context and logs
// its start, completion or failure. The handler's error is returned.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(ctx context.Context, w io.Writer, logData *LogData) error,
) Command {
	return func(ctx context.Context, w io.Writer) error {
		logData := NewLogData(log)
		ctx = WithLogData(ctx, logData)

		log.Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		err := handler(ctx, w, logData)
		endTimer()
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return err
		}

		logData.Log().Infof("Handler.%v.Complete", loggingName)
		return nil
	}
}
