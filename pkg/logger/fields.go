package logger

import (
	"github.com/adamluzsi/lazykit/pkg/errorkit"
)

type LoggingDetail interface{ addTo(logEntry) }

func Field(key string, value any) LoggingDetail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(e logEntry) {
	if _, ok := f.Value.(nullLoggingDetail); ok {
		return
	}
	e[f.Key] = f.Value
}

type Fields map[string]any

func (fields Fields) addTo(e logEntry) {
	for k, v := range fields {
		Field(k, v).addTo(e)
	}
}

// ErrField adds the error message, and for user errors the error ID as "code".
// A nil error adds nothing.
func ErrField(err error) LoggingDetail {
	if err == nil {
		return nullLoggingDetail{}
	}
	details := Fields{
		"message": err.Error(),
	}
	if usrErr, ok := errorkit.LookupUserError(err); ok {
		details["code"] = usrErr.ID
	}
	return Field("error", details)
}

type logEntry map[string]any

func (ld logEntry) addTo(entry logEntry) { entry.Merge(ld) }

func (ld logEntry) Merge(oth logEntry) logEntry {
	for k, v := range oth {
		ld[k] = v
	}
	return ld
}

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(logEntry) {}
