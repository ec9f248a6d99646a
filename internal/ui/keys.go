package ui

import (
	"github.com/atomicstack/weapon-stats/internal/i18n"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Weapons      key.Binding
	Categories   key.Binding
	PrevWeapon   key.Binding
	NextWeapon   key.Binding
	PrevCategory key.Binding
	NextCategory key.Binding
	ClearSearch  key.Binding
	ToggleLocale key.Binding
	Quit         key.Binding
}

func newKeyMap(dict *i18n.Dictionary, locale i18n.Locale) keyMap {
	t := func(source string) string { return dict.T(source, locale) }
	return keyMap{
		Weapons: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", t("weapon")),
		),
		Categories: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", t("category")),
		),
		PrevWeapon: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", t("weapon")),
		),
		NextWeapon: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", t("weapon")),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑", t("category")),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓", t("category")),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", t("clear search")),
		),
		ToggleLocale: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", t("language")+" ("+locale.Toggle().String()+")"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", t("quit")),
		),
	}
}

// ShortHelp lists each direction pair once.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Weapons, k.Categories, k.ClearSearch, k.ToggleLocale, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevWeapon, k.NextWeapon},
		{k.PrevCategory, k.NextCategory},
		{k.ClearSearch, k.ToggleLocale, k.Quit},
	}
}
