package clip

import (
	"log/slog"

	"golang.design/x/clipboard"
)

// New returns the system clipboard backend, or a headless no-op backend when
// the display environment is unavailable (e.g. a server without X11 or
// Wayland). clipboard.Init is called here rather than in init() so the
// warning only fires for commands that actually touch the clipboard.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return headlessBackend{}
	}
	return systemBackend{}
}

type systemBackend struct{}

func (systemBackend) Name() string { return "system clipboard" }

func (systemBackend) ReadText() string {
	return string(clipboard.Read(clipboard.FmtText))
}

// headlessBackend is a no-op backend for environments without a display
// server. Every read reports an empty clipboard.
type headlessBackend struct{}

func (headlessBackend) Name() string     { return "headless (no-op)" }
func (headlessBackend) ReadText() string { return "" }
