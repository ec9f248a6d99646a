package ui

import (
	"github.com/atomicstack/weapon-stats/internal/browser"
	"github.com/atomicstack/weapon-stats/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		events.App.Quit("key")
		m.quitting = true
		return tea.Quit
	case key.Matches(keyMsg, m.keys.PrevWeapon):
		m.navigate(browser.Previous)
	case key.Matches(keyMsg, m.keys.NextWeapon):
		m.navigate(browser.Next)
	case key.Matches(keyMsg, m.keys.PrevCategory):
		m.stepCategory(-1)
	case key.Matches(keyMsg, m.keys.NextCategory):
		m.stepCategory(1)
	case key.Matches(keyMsg, m.keys.ClearSearch):
		m.clearSearch()
	case key.Matches(keyMsg, m.keys.ToggleLocale):
		m.toggleLocale()
	default:
		if m.handleTextInput(keyMsg) {
			// keep the caret solid while typing
			m.filterCursorDirty = true
		}
	}
	return nil
}

func (m *Model) navigate(direction browser.Direction) {
	snap := m.machine.Navigate(direction)
	events.Browser.Navigate(snap.Category(), int(direction), snap.SelectedIndex(), snap.Len())
}

func (m *Model) stepCategory(delta int) {
	item, ok := m.sidebar.Step(delta)
	if !ok {
		return
	}
	m.selectCategory(item.ID)
}

func (m *Model) selectCategory(id string) {
	snap := m.machine.SelectCategory(id)
	m.syncViewport()
	events.Browser.SelectCategory(snap.Category(), snap.Len())
}

func (m *Model) clearSearch() {
	before := m.search.CursorPos()
	m.machine.ClearSearch()
	m.noteFilterCursorChange(before)
	events.Search.Cleared(m.snapshot.Category())
}

func (m *Model) toggleLocale() {
	from := m.snapshot.Locale()
	snap := m.machine.ToggleLocale()
	events.Locale.Toggle(from.String(), snap.Locale().String())
}

func (m *Model) syncViewport() {
	m.sidebar.EnsureCursorVisible(m.maxVisibleCategories())
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.syncViewport()
	return nil
}

// handleMouseMsg steps through the filtered weapons with the scroll wheel.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.navigate(browser.Previous)
	case tea.MouseButtonWheelDown:
		m.navigate(browser.Next)
	}
	return nil
}
