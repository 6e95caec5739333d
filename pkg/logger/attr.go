package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Cached records whether a result came from a cache under the key "cached".
func Cached(hit bool) slog.Attr {
	return slog.Bool("cached", hit)
}

// Unclosed records the names of tags left open under the key "unclosed".
// An empty list yields an empty Attr.
func Unclosed(names ...string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("unclosed", names)
}

// Sane records whether markup needed no repair under the key "sane".
func Sane(ok bool) slog.Attr {
	return slog.Bool("sane", ok)
}

// Repairs records the number of repair events under the key "repairs".
func Repairs(n int) slog.Attr {
	return slog.Int("repairs", n)
}

// InputSize records the input length in bytes under the key "input_size".
func InputSize(n int) slog.Attr {
	return slog.Int("input_size", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
