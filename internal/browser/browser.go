package browser

import (
	"github.com/atomicstack/weapon-stats/internal/catalog"
	"github.com/atomicstack/weapon-stats/internal/i18n"
)

// Source supplies the ordered weapons of a category. Unknown categories yield
// an empty list.
type Source interface {
	Weapons(category string) []catalog.Weapon
}

// Direction is a navigation step through the filtered list.
type Direction int

const (
	Previous Direction = -1
	Next     Direction = 1
)

// Snapshot is the read-only state handed to the rendering layer after every
// transition.
type Snapshot struct {
	category      string
	searchTerm    string
	locale        i18n.Locale
	selectedIndex int
	filtered      []catalog.Weapon
}

// Category returns the active category id.
func (s Snapshot) Category() string { return s.category }

// SearchTerm returns the search term exactly as entered.
func (s Snapshot) SearchTerm() string { return s.searchTerm }

// Locale returns the display locale.
func (s Snapshot) Locale() i18n.Locale { return s.locale }

// SelectedIndex returns the index of the selected weapon. It is meaningless
// when the filtered list is empty.
func (s Snapshot) SelectedIndex() int { return s.selectedIndex }

// Filtered returns a deep copy of the filtered weapon list.
func (s Snapshot) Filtered() []catalog.Weapon {
	if s.filtered == nil {
		return nil
	}
	out := make([]catalog.Weapon, len(s.filtered))
	for i, weapon := range s.filtered {
		out[i] = cloneWeapon(weapon)
	}
	return out
}

// Len returns the length of the filtered list.
func (s Snapshot) Len() int { return len(s.filtered) }

// Selected returns the selected weapon, or false when nothing matches.
func (s Snapshot) Selected() (catalog.Weapon, bool) {
	if s.selectedIndex < 0 || s.selectedIndex >= len(s.filtered) {
		return catalog.Weapon{}, false
	}
	return cloneWeapon(s.filtered[s.selectedIndex]), true
}

func cloneWeapon(weapon catalog.Weapon) catalog.Weapon {
	weapon.Stats = append([]catalog.Stat(nil), weapon.Stats...)
	return weapon
}

// Machine owns the browsing state: category, search term, selection and
// locale. Every transition recomputes the filtered list and resets the
// selection in the same step, then notifies subscribers.
type Machine struct {
	source      Source
	state       Snapshot
	all         []catalog.Weapon
	subscribers []func(Snapshot)
}

// New starts a session on category with index 0 and an empty search term.
func New(source Source, category string, locale i18n.Locale) *Machine {
	m := &Machine{source: source}
	m.state.locale = locale
	m.load(category)
	return m
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	return m.state
}

// Subscribe registers fn to receive every snapshot produced by a transition.
// The returned function removes the subscription.
func (m *Machine) Subscribe(fn func(Snapshot)) func() {
	m.subscribers = append(m.subscribers, fn)
	idx := len(m.subscribers) - 1
	return func() {
		if idx < len(m.subscribers) {
			m.subscribers[idx] = nil
		}
	}
}

// SelectCategory switches category, clearing the search term and selection.
func (m *Machine) SelectCategory(id string) Snapshot {
	m.load(id)
	return m.publish()
}

// SetSearchTerm stores term verbatim. A changed term refilters the category
// and resets the selection; an identical term changes nothing.
func (m *Machine) SetSearchTerm(term string) Snapshot {
	if term == m.state.searchTerm {
		return m.state
	}
	m.state.searchTerm = term
	m.state.filtered = FilterWeapons(m.all, term)
	m.state.selectedIndex = 0
	return m.publish()
}

// ClearSearch is SetSearchTerm("").
func (m *Machine) ClearSearch() Snapshot {
	return m.SetSearchTerm("")
}

// Navigate steps the selection with wraparound. Only the sign of direction
// matters; zero and an empty list leave the state untouched.
func (m *Machine) Navigate(direction Direction) Snapshot {
	n := len(m.state.filtered)
	if n == 0 || direction == 0 {
		return m.state
	}
	step := 1
	if direction < 0 {
		step = -1
	}
	m.state.selectedIndex = Wrap(m.state.selectedIndex, step, n)
	return m.publish()
}

// ToggleLocale flips the display locale and nothing else.
func (m *Machine) ToggleLocale() Snapshot {
	m.state.locale = m.state.locale.Toggle()
	return m.publish()
}

func (m *Machine) load(category string) {
	m.all = nil
	if m.source != nil {
		m.all = m.source.Weapons(category)
	}
	m.state.category = category
	m.state.searchTerm = ""
	m.state.filtered = FilterWeapons(m.all, "")
	m.state.selectedIndex = 0
}

func (m *Machine) publish() Snapshot {
	snap := m.state
	for _, fn := range m.subscribers {
		if fn != nil {
			fn(snap)
		}
	}
	return snap
}
