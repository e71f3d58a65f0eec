package client

import "go.uber.org/zap"

// ZapLogger adapts a zap logger to [RequestLogger].
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger returns a [RequestLogger] writing through l. A nil l yields a
// no-op zap logger.
func NewZapLogger(l *zap.Logger) *ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapLogger{sugar: l.Named("smsgateway").Sugar()}
}

func (l *ZapLogger) Errorf(format string, v ...any) { l.sugar.Errorf(format, v...) }
func (l *ZapLogger) Warnf(format string, v ...any)  { l.sugar.Warnf(format, v...) }
func (l *ZapLogger) Debugf(format string, v ...any) { l.sugar.Debugf(format, v...) }
