package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"
)

// DefaultMaxValueLen is the number of runes kept from a string attribute.
const DefaultMaxValueLen = 120

// ClampHandler wraps an slog.Handler and truncates long string attributes.
// Data rows can be arbitrarily wide, and a debug line should stay on one
// screen line no matter what the input file contains.
type ClampHandler struct {
	// handler is the underlying slog handler that receives clamped records.
	handler slog.Handler

	// max is the number of runes kept per string value.
	max int
}

// NewClampHandler creates a ClampHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used. A non-positive max
// selects DefaultMaxValueLen.
func NewClampHandler(handler slog.Handler, maxLen int) *ClampHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLen
	}
	return &ClampHandler{handler: handler, max: maxLen}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *ClampHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle clamps the record's attributes and passes it to the underlying handler.
func (h *ClampHandler) Handle(ctx context.Context, r slog.Record) error {
	clamped := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		clamped.AddAttrs(h.clampAttr(a))
		return true
	})

	return h.handler.Handle(ctx, clamped)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are clamped before being added.
func (h *ClampHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clamped := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clamped[i] = h.clampAttr(a)
	}
	return &ClampHandler{handler: h.handler.WithAttrs(clamped), max: h.max}
}

// WithGroup returns a new handler with the given group name.
func (h *ClampHandler) WithGroup(name string) slog.Handler {
	return &ClampHandler{handler: h.handler.WithGroup(name), max: h.max}
}

// clampAttr clamps a single attribute, recursively handling groups.
func (h *ClampHandler) clampAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		clamped := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			clamped[i] = h.clampAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clamped...)}
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, Clamp(a.Value.String(), h.max))
	}

	return a
}

// Clamp shortens s to at most maxLen runes. A truncated value ends with a
// marker giving the number of runes dropped.
func Clamp(s string, maxLen int) string {
	n := utf8.RuneCountInString(s)
	if n <= maxLen {
		return s
	}

	runes := []rune(s)
	return fmt.Sprintf("%s...(%d more)", string(runes[:maxLen]), n-maxLen)
}

// level returns Debug when verbose is set, otherwise Warn.
func level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a new slog.Logger writing text records to w.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level(verbose),
	}

	return slog.New(NewClampHandler(slog.NewTextHandler(w, opts), DefaultMaxValueLen))
}

// NewJSONLogger creates a new slog.Logger that outputs JSON format.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level(verbose),
	}

	return slog.New(NewClampHandler(slog.NewJSONHandler(w, opts), DefaultMaxValueLen))
}
