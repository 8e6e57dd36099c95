package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPush_StoresNewestFirst(t *testing.T) {
	h := New(10)
	now := time.Now()

	require.True(t, h.Push("first", now))
	require.True(t, h.Push("second", now.Add(time.Second)))

	entries := h.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "second", entries[0].Content)
	require.Equal(t, "first", entries[1].Content)
}

func TestPush_EmptyContentIsNoOp(t *testing.T) {
	h := New(10)
	require.False(t, h.Push("", time.Now()))
	require.Zero(t, h.Len())
}

func TestPush_AdjacentDuplicateSuppressed(t *testing.T) {
	h := New(10)
	now := time.Now()

	require.True(t, h.Push("same", now))
	require.False(t, h.Push("same", now.Add(time.Second)))
	require.Equal(t, 1, h.Len())
}

func TestPush_NonAdjacentDuplicateIsStored(t *testing.T) {
	h := New(10)
	now := time.Now()

	require.True(t, h.Push("a", now))
	require.True(t, h.Push("b", now))
	require.True(t, h.Push("a", now), "content further back in history is not deduplicated")
	require.Equal(t, 3, h.Len())
}

func TestPush_EvictsOldestAtCapacity(t *testing.T) {
	h := New(3)
	now := time.Now()

	for i := range 5 {
		require.True(t, h.Push(fmt.Sprintf("item-%d", i), now.Add(time.Duration(i)*time.Second)))
		require.LessOrEqual(t, h.Len(), 3, "length must never exceed capacity")
	}

	entries := h.Entries()
	require.Len(t, entries, 3)
	require.Equal(t, "item-4", entries[0].Content)
	require.Equal(t, "item-3", entries[1].Content)
	require.Equal(t, "item-2", entries[2].Content)
}

func TestNew_PanicsOnNonPositiveCapacity(t *testing.T) {
	require.Panics(t, func() { New(0) })
	require.Panics(t, func() { New(-1) })
}

func TestClear(t *testing.T) {
	h := New(5)
	h.Push("x", time.Now())
	h.Push("y", time.Now())

	h.Clear()

	require.Zero(t, h.Len())
	require.Empty(t, h.Entries())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	h := New(5)
	h.Push("one", time.Now())

	snapshot := h.Entries()
	h.Push("two", time.Now())

	require.Len(t, snapshot, 1, "snapshot must not see later pushes")
	require.Len(t, h.Entries(), 2)
}

func TestGetAndRemove(t *testing.T) {
	h := New(5)
	now := time.Now()
	h.Push("a", now)
	h.Push("b", now)

	e, ok := h.Get(1)
	require.True(t, ok)
	require.Equal(t, "a", e.Content)

	_, ok = h.Get(2)
	require.False(t, ok)
	_, ok = h.Get(-1)
	require.False(t, ok)

	require.True(t, h.Remove(0))
	require.Equal(t, 1, h.Len())
	e, ok = h.Get(0)
	require.True(t, ok)
	require.Equal(t, "a", e.Content)

	require.False(t, h.Remove(5))
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		maxChars int
		want     string
	}{
		{"short stays intact", "hello", 10, "hello"},
		{"newlines flatten to spaces", "a\nb\tc", 10, "a b c"},
		{"long content truncates with ellipsis", "abcdefghij", 5, "abcde…"},
		{"multibyte runes counted as one", "日本語テキスト", 3, "日本語…"},
		{"surrounding whitespace trimmed", "  x  ", 10, "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Entry{Content: tt.content}
			require.Equal(t, tt.want, e.Preview(tt.maxChars))
		})
	}
}
