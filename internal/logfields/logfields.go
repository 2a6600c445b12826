package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyStep       = "step"
	KeyDurationMS = "duration_ms"
	KeyPath       = "path"
	KeyTemplate   = "template"
	KeyCommand    = "command"
	KeyDir        = "dir"
	KeyProject    = "project"
	KeyHosted     = "hosted"
	KeyEvent      = "event"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Step(name string) slog.Attr       { return slog.String(KeyStep, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Template(p string) slog.Attr      { return slog.String(KeyTemplate, p) }
func Command(c string) slog.Attr       { return slog.String(KeyCommand, c) }
func Dir(d string) slog.Attr           { return slog.String(KeyDir, d) }
func Project(name string) slog.Attr    { return slog.String(KeyProject, name) }
func Hosted(b bool) slog.Attr          { return slog.Bool(KeyHosted, b) }
func Event(op string) slog.Attr        { return slog.String(KeyEvent, op) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
