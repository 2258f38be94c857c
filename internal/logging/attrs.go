package logging

import "log/slog"

const (
	FieldComponent = "component"
	FieldSessionID = "session_id"
	FieldLocation  = "location"
	FieldBackend   = "backend"
	FieldCount     = "count"
	FieldRecordID  = "record_id"
	FieldEventType = "event_type"
)

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}
