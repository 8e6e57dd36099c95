package capture

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.klb.dev/clipsight/internal/history"
)

// fakeBackend serves scripted clipboard contents.
type fakeBackend struct {
	text string
}

func (f *fakeBackend) Name() string     { return "fake" }
func (f *fakeBackend) ReadText() string { return f.text }

func TestCapture_StoresClipboardText(t *testing.T) {
	backend := &fakeBackend{text: "copied text"}
	c := New(history.New(10), backend)

	require.True(t, c.Capture())

	entries := c.History().Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "copied text", entries[0].Content)
	require.False(t, entries[0].CapturedAt.IsZero())
}

func TestCapture_EmptyClipboardIsSilentNoOp(t *testing.T) {
	backend := &fakeBackend{}
	c := New(history.New(10), backend)

	require.False(t, c.Capture())
	require.Zero(t, c.History().Len())
}

func TestCapture_RepeatedTriggersCollapse(t *testing.T) {
	backend := &fakeBackend{text: "same"}
	c := New(history.New(10), backend)

	require.True(t, c.Capture())
	require.False(t, c.Capture())
	require.False(t, c.Capture())
	require.Equal(t, 1, c.History().Len())
}

func TestCapture_ChangedContentStoresAgain(t *testing.T) {
	backend := &fakeBackend{text: "one"}
	c := New(history.New(10), backend)

	require.True(t, c.Capture())
	backend.text = "two"
	require.True(t, c.Capture())
	backend.text = "one"
	require.True(t, c.Capture(), "non-adjacent repeat is stored")

	require.Equal(t, 3, c.History().Len())
}

func TestDrain_OneCapturePerPendingSignal(t *testing.T) {
	backend := &fakeBackend{text: "initial"}
	c := New(history.New(10), backend)

	signals := make(chan struct{}, 8)
	signals <- struct{}{}
	signals <- struct{}{}
	signals <- struct{}{}

	require.Equal(t, 3, c.Drain(signals))
	require.Equal(t, 1, c.History().Len(), "identical content bursts collapse to one entry")
}

func TestDrain_EmptyChannelReturnsImmediately(t *testing.T) {
	c := New(history.New(10), &fakeBackend{text: "x"})
	signals := make(chan struct{}, 1)

	require.Zero(t, c.Drain(signals))
	require.Zero(t, c.History().Len())
}
