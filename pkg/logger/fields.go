package logger

import (
	"context"
)

// Detail is a piece of information attached to a log entry.
type Detail interface{ addTo(*Logger, logEntry) }

func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(l *Logger, e logEntry) {
	e[l.getKeyFormatter()(f.Key)] = l.toFieldValue(f.Value)
}

type Fields map[string]any

func (fields Fields) addTo(l *Logger, e logEntry) {
	for k, v := range fields {
		Field(k, v).addTo(l, e)
	}
}

func ErrField(err error) Detail {
	if err == nil {
		return nullDetail{}
	}
	return Field("error", Fields{"message": err.Error()})
}

func (l *Logger) toFieldValue(val any) any {
	switch val := val.(type) {
	case Fields:
		le := logEntry{}
		val.addTo(l, le)
		return map[string]any(le)
	case field:
		le := logEntry{}
		val.addTo(l, le)
		return map[string]any(le)
	case []Detail:
		le := logEntry{}
		for _, d := range val {
			d.addTo(l, le)
		}
		return map[string]any(le)
	case error:
		return val.Error()
	default:
		return val
	}
}

type logEntry map[string]any

type nullDetail struct{}

func (nullDetail) addTo(*Logger, logEntry) {}

type ctxKeyDetails struct{}

// ContextWith returns a context that carries the given details,
// so every log call made with it will include them.
func ContextWith(ctx context.Context, ds ...Detail) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	prev := detailsFromContext(ctx)
	all := make([]Detail, 0, len(prev)+len(ds))
	all = append(append(all, prev...), ds...)
	return context.WithValue(ctx, ctxKeyDetails{}, all)
}

func detailsFromContext(ctx context.Context) []Detail {
	if ctx == nil {
		return nil
	}
	ds, _ := ctx.Value(ctxKeyDetails{}).([]Detail)
	return ds
}
