// Package prompt reads a single confirmation keystroke while a table row is
// displayed. One bubbletea program decodes input for the lifetime of a
// Reader; the terminal is in raw mode only while a prompt waits for its key.
package prompt

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwulff/memoexport/internal/export"
)

// keyEvent is one decoded keystroke.
type keyEvent struct {
	key         export.Key
	interrupted bool
}

// model forwards every keystroke, in order, to the Reader. It draws nothing.
type model struct {
	events chan<- keyEvent
	stop   <-chan struct{}
}

func newModel(events chan<- keyEvent, stop <-chan struct{}) model {
	return model{events: events, stop: stop}
}

// Init does nothing; the program waits for input.
func (m model) Init() tea.Cmd {
	return nil
}

// Update hands each key to the waiting prompt, blocking until it is taken so
// keys typed ahead stay queued for later prompts.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	for _, ev := range classify(keyMsg) {
		select {
		case m.events <- ev:
		case <-m.stop:
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	return ""
}

// classify maps a decoded key to prompt events. Printable characters read in
// one chunk arrive as a single KeyRunes message and are split back into one
// event per keystroke.
func classify(msg tea.KeyMsg) []keyEvent {
	switch msg.String() {
	case KeyEnter, KeyLineFeed:
		return []keyEvent{{key: export.KeyConfirm}}
	case KeyEsc:
		return []keyEvent{{key: export.KeyEscape}}
	case KeyCtrlC:
		return []keyEvent{{interrupted: true}}
	}
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) > 1 {
		events := make([]keyEvent, len(msg.Runes))
		for i := range events {
			events[i] = keyEvent{key: export.KeyOther}
		}
		return events
	}
	return []keyEvent{{key: export.KeyOther}}
}
