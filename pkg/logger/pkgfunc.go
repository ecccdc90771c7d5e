package logger

import (
	"bytes"
	"context"
)

var Default = &Logger{}

func Debug(ctx context.Context, msg string, ds ...LoggingDetail) {
	Default.Debug(ctx, msg, ds...)
}

func Info(ctx context.Context, msg string, ds ...LoggingDetail) {
	Default.Info(ctx, msg, ds...)
}

func Warn(ctx context.Context, msg string, ds ...LoggingDetail) {
	Default.Warn(ctx, msg, ds...)
}

func Error(ctx context.Context, msg string, ds ...LoggingDetail) {
	Default.Error(ctx, msg, ds...)
}

func Fatal(ctx context.Context, msg string, ds ...LoggingDetail) {
	Default.Fatal(ctx, msg, ds...)
}

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// Stub will restore the logger.Default after the test.
func Stub(tb testingTB) *bytes.Buffer {
	tb.Helper()
	og := Default
	tb.Cleanup(func() { Default = og })
	buf := &bytes.Buffer{}
	Default = &Logger{
		Out:          buf,
		Level:        og.Level,
		Separator:    og.Separator,
		MessageKey:   og.MessageKey,
		LevelKey:     og.LevelKey,
		TimestampKey: og.TimestampKey,
		MarshalFunc:  og.MarshalFunc,
		KeyFormatter: og.KeyFormatter,
	}
	return buf
}
