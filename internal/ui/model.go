// Package ui implements the terminal interface: a history pane, a detail
// pane showing interpreter outcomes for the selected entry, and the event
// loop that turns trigger signals into captures.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"go.klb.dev/clipsight/internal/capture"
	"go.klb.dev/clipsight/internal/history"
	"go.klb.dev/clipsight/internal/interpret"
)

// triggerMsg is delivered once per external capture signal.
type triggerMsg struct{}

// Model is the inspector UI state. The model goroutine is the only writer of
// the history: external signals arrive as messages and each performs exactly
// one capture here.
type Model struct {
	ctrl     *capture.Controller
	hist     *history.History
	registry *interpret.Registry
	keys     KeyMap
	triggers <-chan struct{}

	selected int
	outcomes []interpret.Outcome
	status   string
	width    int
	height   int
}

// New returns the UI model. triggers may be nil when no external signal
// source is available; the in-app capture key still works.
func New(ctrl *capture.Controller, registry *interpret.Registry, keys KeyMap, triggers <-chan struct{}) Model {
	return Model{
		ctrl:     ctrl,
		hist:     ctrl.History(),
		registry: registry,
		keys:     keys,
		triggers: triggers,
		selected: -1,
		status:   "Ready. Press c to capture, or touch the trigger file.",
	}
}

// waitForTrigger blocks on the signal channel and re-arms after every
// delivery, so each pending signal becomes one capture.
func waitForTrigger(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		<-ch
		return triggerMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return waitForTrigger(m.triggers)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case triggerMsg:
		m = m.captureNow()
		// Sweep any signals that queued behind this one so a burst of
		// presses becomes a single UI update.
		if m.ctrl.Drain(m.triggers) > 0 {
			m.selected = 0
			m = m.refresh()
		}
		return m, waitForTrigger(m.triggers)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Capture):
			return m.captureNow(), nil
		case key.Matches(msg, m.keys.Up):
			return m.moveSelection(-1), nil
		case key.Matches(msg, m.keys.Down):
			return m.moveSelection(1), nil
		case key.Matches(msg, m.keys.Delete):
			return m.deleteSelected(), nil
		case key.Matches(msg, m.keys.Clear):
			m.hist.Clear()
			m.selected = -1
			m.outcomes = nil
			m.status = "History cleared."
			return m, nil
		}
	}
	return m, nil
}

// captureNow performs one capture and selects the newest entry when a new
// one was stored.
func (m Model) captureNow() Model {
	if m.ctrl.Capture() {
		m.selected = 0
		m.status = "Captured."
	} else if m.hist.Len() > 0 {
		m.status = "Nothing new to capture."
	} else {
		m.status = "Clipboard empty."
	}
	return m.refresh()
}

func (m Model) moveSelection(delta int) Model {
	if m.hist.Len() == 0 {
		return m
	}
	next := m.selected + delta
	if m.selected < 0 {
		next = 0
	}
	if next < 0 || next >= m.hist.Len() {
		return m
	}
	m.selected = next
	return m.refresh()
}

func (m Model) deleteSelected() Model {
	if !m.hist.Remove(m.selected) {
		return m
	}
	if m.hist.Len() == 0 {
		m.selected = -1
	} else if m.selected >= m.hist.Len() {
		m.selected = m.hist.Len() - 1
	}
	m.status = "Entry deleted."
	return m.refresh()
}

// refresh recomputes the interpreter outcomes for the selected entry.
// Outcomes are transient and rebuilt on every selection change.
func (m Model) refresh() Model {
	entry, ok := m.hist.Get(m.selected)
	if !ok {
		m.outcomes = nil
		return m
	}
	m.outcomes = m.registry.RunAll(entry.Content)
	return m
}

// Selected returns the selected index, -1 when nothing is selected.
func (m Model) Selected() int {
	return m.selected
}

// Outcomes returns the interpreter outcomes for the selected entry.
func (m Model) Outcomes() []interpret.Outcome {
	return m.outcomes
}

func (m Model) View() string {
	if m.width == 0 {
		return "loading…"
	}

	header := titleStyle.Render("clipsight") + "  " + statusStyle.Render(m.status)
	footer := dimStyle.Render(helpLine(m.keys))

	bodyHeight := max(m.height-4, 3)
	listWidth := min(m.width/3, 40)
	detailWidth := max(m.width-listWidth-6, 20)

	list := paneStyle.Width(listWidth).Height(bodyHeight).Render(m.renderList(bodyHeight))
	detail := paneStyle.Width(detailWidth).Height(bodyHeight).Render(m.renderDetail(detailWidth))

	return header + "\n" +
		joinHorizontal(list, detail) + "\n" +
		footer
}

func (m Model) renderList(height int) string {
	entries := m.hist.Entries()
	if len(entries) == 0 {
		return dimStyle.Render("No history yet.")
	}

	out := ""
	for i, e := range entries {
		if i >= height {
			out += dimStyle.Render(fmt.Sprintf("… %d more", len(entries)-i))
			break
		}
		line := fmt.Sprintf("%s %s", dimStyle.Render(e.Stamp()), e.Preview(30))
		if i == m.selected {
			line = selectedStyle.Render(fmt.Sprintf("%s %s", e.Stamp(), e.Preview(30)))
		}
		out += line + "\n"
	}
	return out
}

func helpLine(k KeyMap) string {
	out := ""
	for i, b := range k.ShortHelp() {
		if i > 0 {
			out += "  "
		}
		out += b.Help().Key + " " + b.Help().Desc
	}
	return out
}
