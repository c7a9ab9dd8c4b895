package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
)

var (
	cyan  = color.New(color.FgCyan).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	gray  = color.New(color.FgHiBlack).SprintFunc()
)

var _ slog.Handler = (*progressHandler)(nil)

// progressHandler prints one line per generator step and drops
// everything else.
type progressHandler struct {
	out   io.Writer
	attrs []slog.Attr
}

func newProgressHandler(out io.Writer) *progressHandler {
	return &progressHandler{out: out}
}

func (h *progressHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level == slog.LevelInfo
}

func (h *progressHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := map[string]slog.Value{}
	for _, a := range h.attrs {
		attrs[a.Key] = a.Value
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value
		return true
	})
	var err error
	switch r.Message {
	case "rendering source":
		_, err = fmt.Fprintf(h.out, "%s %s %s\n", cyan("render"), attrs["path"], gray("("+attrs["size"].String()+"px)"))
	case "wrote file":
		_, err = fmt.Fprintf(h.out, "%s  %s %s\n", green("wrote"), attrs["path"], gray("("+attrs["sizes"].String()+")"))
	}
	return err
}

func (h *progressHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &progressHandler{out: h.out, attrs: append(append([]slog.Attr{}, h.attrs...), attrs...)}
}

func (h *progressHandler) WithGroup(string) slog.Handler {
	return h
}
