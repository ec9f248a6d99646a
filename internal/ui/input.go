package ui

import (
	"unicode"

	"github.com/atomicstack/weapon-stats/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.search.CursorPos() {
		m.filterCursorDirty = true
	}
}

// handleTextInput edits the search prompt and reports whether the key changed
// it. Edits that change the text are forwarded to the browser; caret movement
// stays local to the prompt.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+u":
		if !m.search.Clear() {
			return false
		}
		m.commitSearch()
		events.Search.Cleared(m.snapshot.Category())
		return true
	case "ctrl+w":
		if !m.search.DeleteWordBackward() {
			return false
		}
		m.commitSearch()
		events.Search.WordBackspace(m.snapshot.Category(), m.search.Value, m.snapshot.Len())
		return true
	case "ctrl+a":
		return m.moveCaret(m.search.MoveStart, false)
	case "ctrl+e":
		return m.moveCaret(m.search.MoveEnd, false)
	case "alt+b":
		return m.moveCaret(m.search.MoveWordBackward, true)
	case "alt+f":
		return m.moveCaret(m.search.MoveWordForward, true)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.search.DeleteRuneBackward() {
			return false
		}
		m.commitSearch()
		events.Search.Backspace(m.snapshot.Category(), m.search.Value, m.snapshot.Len())
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToSearch(string(msg.Runes))
	case tea.KeySpace:
		return m.appendToSearch(" ")
	}
	return false
}

func (m *Model) moveCaret(move func() bool, word bool) bool {
	if !move() {
		return false
	}
	if word {
		events.Search.CursorWord(m.search.Cursor)
	} else {
		events.Search.Cursor(m.search.Cursor)
	}
	return true
}

func (m *Model) appendToSearch(text string) bool {
	if !m.search.Insert(text) {
		return false
	}
	m.commitSearch()
	events.Search.Append(m.snapshot.Category(), m.search.Value, m.snapshot.Len())
	return true
}

func (m *Model) commitSearch() {
	m.machine.SetSearchTerm(m.search.Value)
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := m.T("Search") + " » "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	text := m.search.Value
	if text == "" {
		runes := []rune(m.T("Search by Name"))
		var caretRune, rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		return prompt + m.renderFilterCursor(caretRune) + render(styles.FilterPlaceholder, rest)
	}
	runes := []rune(text)
	pos := m.search.CursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Copy()
	base = base.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Copy().Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
