// Package capture decides, per trigger, whether a clipboard snapshot enters
// the history.
package capture

import (
	"context"
	"log/slog"
	"time"

	"go.klb.dev/clipsight/internal/clip"
	"go.klb.dev/clipsight/internal/history"
)

// Controller owns the history and performs captures against a clipboard
// backend. All history mutation happens on the goroutine calling Capture.
type Controller struct {
	hist    *history.History
	backend clip.Backend
}

// New returns a controller writing into hist via backend.
func New(hist *history.History, backend clip.Backend) *Controller {
	return &Controller{hist: hist, backend: backend}
}

// History returns the history this controller writes into.
func (c *Controller) History() *history.History {
	return c.hist
}

// Capture performs one clipboard read and at most one history push, and
// reports whether a new entry was stored. An empty or unreadable clipboard
// is a silent no-op, as is content identical to the newest entry.
func (c *Controller) Capture() bool {
	text := c.backend.ReadText()
	if text == "" {
		slog.Debug("capture skipped, clipboard empty", "backend", c.backend.Name())
		return false
	}

	added := c.hist.Push(text, time.Now())
	if !added {
		slog.Debug("capture suppressed, duplicate of newest entry")
		return false
	}

	slog.Info("captured", "bytes", len(text), "entries", c.hist.Len())
	logPreview(text)
	return true
}

// Drain consumes every pending trigger signal without blocking and runs one
// capture per signal. Returns the number of signals consumed. Bursts of
// identical clipboard content collapse in the history via the
// adjacent-duplicate rule.
func (c *Controller) Drain(signals <-chan struct{}) int {
	n := 0
	for {
		select {
		case <-signals:
			c.Capture()
			n++
		default:
			return n
		}
	}
}

// logPreview logs the captured text at DEBUG, truncated to 120 bytes.
func logPreview(text string) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	preview := text
	if len(preview) > 120 {
		preview = preview[:120] + "…"
	}
	slog.Debug("captured content", "preview", preview)
}
