package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyUnit     = "unit"
	KeyDocument = "document"
	KeyPath     = "path"
	KeyOutput   = "output"
	KeyCount    = "count"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Unit(name string) slog.Attr  { return slog.String(KeyUnit, name) }
func Document(d string) slog.Attr { return slog.String(KeyDocument, d) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Output(o string) slog.Attr   { return slog.String(KeyOutput, o) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
