package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"strings"
)

const timeFormat = "2006/01/02 15:04:05"

// TextHandler writes records as "2006/01/02 15:04:05 LEVEL message key=value ...".
type TextHandler struct {
	slog.Handler
	l      *log.Logger
	attrs  []slog.Attr
	prefix string
}

func NewTextHandler(out io.Writer, options *slog.HandlerOptions) *TextHandler {
	return &TextHandler{
		Handler: slog.NewTextHandler(out, options),
		l:       log.New(out, "", 0),
	}
}

func (h *TextHandler) Handle(_ context.Context, r slog.Record) error {
	parts := make([]string, 0, 3+len(h.attrs)+r.NumAttrs()) //nolint:mnd
	parts = append(parts, r.Time.Format(timeFormat), r.Level.String(), r.Message)

	for _, a := range h.attrs {
		parts = append(parts, formatAttr(a))
	}

	r.Attrs(func(a slog.Attr) bool {
		a.Key = h.prefix + a.Key
		parts = append(parts, formatAttr(a))

		return true
	})

	// log.Logger serializes concurrent writes
	h.l.Println(strings.Join(parts, " "))

	return nil
}

func (h *TextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.Handler = h.Handler.WithAttrs(attrs)
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)

	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		clone.attrs = append(clone.attrs, a)
	}

	return &clone
}

func (h *TextHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.Handler = h.Handler.WithGroup(name)
	clone.prefix = h.prefix + name + "."

	return &clone
}

func formatAttr(a slog.Attr) string {
	return fmt.Sprintf("%s=%v", a.Key, a.Value.Resolve().Any())
}
