package paging

import (
	"io"
	"log"
)

// A LogHook writes one line per fault handling event.
type LogHook struct {
	*log.Logger
}

// NewLogHook creates a LogHook that writes to w.
func NewLogHook(w io.Writer) *LogHook {
	return &LogHook{Logger: log.New(w, "paging: ", 0)}
}

// Func logs the event.
func (h *LogHook) Func(ctx HookCtx) {
	if ctx.Frame < 0 {
		h.Printf("%s page %d", ctx.Pos.Name, ctx.Page)
		return
	}

	h.Printf("%s page %d frame %d", ctx.Pos.Name, ctx.Page, ctx.Frame)
}
