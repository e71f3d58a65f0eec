package client

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// GoKitLogger adapts a go-kit logger to [RequestLogger]. Messages are
// formatted and logged under the "msg" key with a level attached.
type GoKitLogger struct {
	logger log.Logger
}

func NewGoKitLogger(l log.Logger) *GoKitLogger {
	if l == nil {
		l = log.NewNopLogger()
	}
	return &GoKitLogger{logger: log.With(l, "component", "smsgateway")}
}

func (l *GoKitLogger) Errorf(format string, v ...any) {
	_ = level.Error(l.logger).Log("msg", fmt.Sprintf(format, v...))
}

func (l *GoKitLogger) Warnf(format string, v ...any) {
	_ = level.Warn(l.logger).Log("msg", fmt.Sprintf(format, v...))
}

func (l *GoKitLogger) Debugf(format string, v ...any) {
	_ = level.Debug(l.logger).Log("msg", fmt.Sprintf(format, v...))
}
