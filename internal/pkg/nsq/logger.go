package nsq

import (
	"github.com/nsqio/go-nsq"
	"github.com/sirupsen/logrus"
)

// logrusAdapter routes go-nsq internal logging through logrus
type logrusAdapter struct {
	log *logrus.Logger
}

func newLogrusAdapter() *logrusAdapter {
	return &logrusAdapter{log: logrus.StandardLogger()}
}

// Output implements the go-nsq logger interface
func (a *logrusAdapter) Output(_ int, s string) error {
	a.log.Info(s)
	return nil
}

const internalLogLevel = nsq.LogLevelWarning
