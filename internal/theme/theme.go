package theme

import (
	"github.com/atomicstack/weapon-stats/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title                 *lipgloss.Style
	SidebarHeading        *lipgloss.Style
	SidebarHint           *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Card                  *lipgloss.Style
	PrimaryLabel          *lipgloss.Style
	Stars                 *lipgloss.Style
	StatsHeader           *lipgloss.Style
	StatsMax              *lipgloss.Style
	StatRow               *lipgloss.Style
	Image                 *lipgloss.Style
	EmptyTitle            *lipgloss.Style
	EmptyHint             *lipgloss.Style
	Counter               *lipgloss.Style
	Dot                   *lipgloss.Style
	ActiveDot             *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
	Rarity                map[catalog.Rarity]*lipgloss.Style
}

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	SidebarHeading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	SidebarHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Card: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	PrimaryLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	Stars: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	StatsHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	StatsMax: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	StatRow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Image: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	EmptyTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	),
	EmptyHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Counter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Dot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	ActiveDot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")).Blink(true),
	),
	Rarity: map[catalog.Rarity]*lipgloss.Style{
		catalog.Common:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true)),
		catalog.Uncommon: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)),
		catalog.Rare:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)),
		catalog.Epic:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)),
	},
}

var unknownRarity = ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true))

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// RarityStyle returns the colour used for a weapon name of the given rarity.
func (s *Styles) RarityStyle(r catalog.Rarity) *lipgloss.Style {
	if style, ok := s.Rarity[r]; ok && style != nil {
		return style
	}
	return unknownRarity
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
