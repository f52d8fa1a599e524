package logger

import "log/slog"

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

// Dataset records where an address dataset was loaded from.
func Dataset(source string) slog.Attr {
	return slog.String("dataset", source)
}

// Province records a province name as received, under the key "province".
func Province(name string) slog.Attr {
	return slog.String("province", name)
}

// Ward records a ward name as received, under the key "ward".
func Ward(name string) slog.Attr {
	return slog.String("ward", name)
}

// Valid records a validation outcome under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}
