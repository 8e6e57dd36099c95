// Package clip provides read access to the system clipboard. The capture
// path only ever reads; clipsight never writes the clipboard.
package clip

// Backend is the clipboard-read capability handed to the capture controller.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// ReadText returns the current clipboard text, or "" when the clipboard
	// is empty or holds non-text content. Called synchronously from the
	// foreground goroutine only.
	ReadText() string
}
