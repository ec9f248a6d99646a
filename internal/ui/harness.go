package ui

import (
	"github.com/atomicstack/weapon-stats/internal/browser"
	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives the UI model programmatically for tests and scripted runs.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model. Returned commands are dropped:
// the only ones the model produces are caret blink timers and quit.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil || h.Quit() {
		return
	}
	mdl, _ := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
}

// Key sends a named key such as "left", "esc" or "ctrl+l".
func (h *Harness) Key(name string) {
	h.Send(keyMsg(name))
}

// Type sends text one rune at a time, the way a terminal delivers it.
func (h *Harness) Type(text string) {
	for _, r := range text {
		if r == ' ' {
			h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.model != nil && h.model.quitting
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Snapshot returns the browser state behind the current view.
func (h *Harness) Snapshot() browser.Snapshot {
	return h.model.Snapshot()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

var namedKeys = map[string]tea.KeyType{
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"esc":       tea.KeyEsc,
	"backspace": tea.KeyBackspace,
	"ctrl+a":    tea.KeyCtrlA,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+e":    tea.KeyCtrlE,
	"ctrl+l":    tea.KeyCtrlL,
	"ctrl+u":    tea.KeyCtrlU,
	"ctrl+w":    tea.KeyCtrlW,
}

func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "alt+b", "alt+f":
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{rune(name[len(name)-1])}, Alt: true}
	}
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}
