package state

// Item is a single sidebar entry.
type Item struct {
	ID    string
	Label string
	Icon  string
}

// Sidebar tracks the category list, the highlighted entry and the scroll
// offset of the visible window.
type Sidebar struct {
	Items          []Item
	Cursor         int
	ViewportOffset int
}

// NewSidebar builds a sidebar highlighting the first item.
func NewSidebar(items []Item) *Sidebar {
	return &Sidebar{Items: append([]Item(nil), items...)}
}

// IndexOf returns the index of id, or -1.
func (s *Sidebar) IndexOf(id string) int {
	for i, item := range s.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Select highlights id. Unknown ids leave the cursor where it is and return
// false.
func (s *Sidebar) Select(id string) bool {
	idx := s.IndexOf(id)
	if idx < 0 {
		return false
	}
	s.Cursor = idx
	return true
}

// Current returns the highlighted item.
func (s *Sidebar) Current() (Item, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Items) {
		return Item{}, false
	}
	return s.Items[s.Cursor], true
}

// Step moves the cursor by delta with wraparound and returns the newly
// highlighted item.
func (s *Sidebar) Step(delta int) (Item, bool) {
	n := len(s.Items)
	if n == 0 {
		s.Cursor = 0
		return Item{}, false
	}
	next := (s.Cursor + delta) % n
	if next < 0 {
		next += n
	}
	s.Cursor = next
	return s.Items[next], true
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (s *Sidebar) EnsureCursorVisible(maxVisible int) {
	if len(s.Items) == 0 {
		s.Cursor = 0
		s.ViewportOffset = 0
		return
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
	if s.Cursor >= len(s.Items) {
		s.Cursor = len(s.Items) - 1
	}
	if maxVisible <= 0 {
		s.ViewportOffset = 0
		return
	}
	maxOffset := len(s.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ViewportOffset > maxOffset {
		s.ViewportOffset = maxOffset
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
	if s.Cursor < s.ViewportOffset {
		s.ViewportOffset = s.Cursor
	}
	if upper := s.ViewportOffset + maxVisible - 1; s.Cursor > upper {
		s.ViewportOffset = s.Cursor - maxVisible + 1
	}
}

// Visible returns the items inside the viewport and the index of the first.
func (s *Sidebar) Visible(maxVisible int) ([]Item, int) {
	if maxVisible <= 0 || len(s.Items) <= maxVisible {
		return s.Items, 0
	}
	s.EnsureCursorVisible(maxVisible)
	start := s.ViewportOffset
	return s.Items[start : start+maxVisible], start
}
