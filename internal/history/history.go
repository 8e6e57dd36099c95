// Package history implements the bounded, newest-first store of captured
// clipboard snapshots.
package history

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// Entry is a single captured clipboard snapshot. Entries are immutable:
// they are created on capture and only ever removed, never changed.
type Entry struct {
	Content    string
	CapturedAt time.Time
}

// Preview returns the entry content flattened to a single line and truncated
// to maxChars runes, with an ellipsis when anything was cut.
func (e Entry) Preview(maxChars int) string {
	flat := strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, strings.TrimSpace(e.Content))

	if utf8.RuneCountInString(flat) <= maxChars {
		return flat
	}
	runes := []rune(flat)
	return string(runes[:maxChars]) + "…"
}

// Stamp returns the capture time formatted for the history list.
func (e Entry) Stamp() string {
	return e.CapturedAt.Local().Format("15:04:05")
}

// History is a fixed-capacity sequence of entries, newest at index 0.
// It has exactly one writer (the capture controller's goroutine) and is read
// synchronously on that same goroutine, so it carries no locking.
type History struct {
	entries []Entry
	maxSize int
}

// New returns an empty history holding at most maxSize entries.
// A non-positive capacity is a programming error.
func New(maxSize int) *History {
	if maxSize <= 0 {
		panic(fmt.Sprintf("history: capacity must be positive, got %d", maxSize))
	}
	return &History{maxSize: maxSize}
}

// Push stores content as the newest entry and reports whether anything was
// stored. Empty content is a no-op. Content equal to the current newest
// entry is a no-op, so repeated triggers on an unchanged clipboard collapse
// to a single entry; the same content further back is stored again. When the
// history is full the oldest entry is evicted first, so the length never
// exceeds the capacity.
func (h *History) Push(content string, at time.Time) bool {
	if content == "" {
		return false
	}
	if len(h.entries) > 0 && h.entries[0].Content == content {
		return false
	}
	if len(h.entries) == h.maxSize {
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = slices.Insert(h.entries, 0, Entry{Content: content, CapturedAt: at})
	return true
}

// Entries returns a copy of the stored entries, newest first. The copy is
// not updated by later pushes.
func (h *History) Entries() []Entry {
	return slices.Clone(h.entries)
}

// Get returns the entry at index i (0 = newest).
func (h *History) Get(i int) (Entry, bool) {
	if i < 0 || i >= len(h.entries) {
		return Entry{}, false
	}
	return h.entries[i], true
}

// Remove deletes the entry at index i and reports whether it existed.
func (h *History) Remove(i int) bool {
	if i < 0 || i >= len(h.entries) {
		return false
	}
	h.entries = slices.Delete(h.entries, i, i+1)
	return true
}

// Clear removes all entries.
func (h *History) Clear() {
	h.entries = nil
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// MaxSize returns the fixed capacity set at construction.
func (h *History) MaxSize() int {
	return h.maxSize
}
