package state

import "unicode"

// Search holds the text of the search prompt and the caret position, counted
// in runes. Every editing method reports whether the text or caret changed.
type Search struct {
	Value  string
	Cursor int
}

// Set replaces the text and clamps the caret into range.
func (s *Search) Set(value string, cursor int) {
	s.Value = value
	runes := []rune(value)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	s.Cursor = cursor
}

// Clear empties the prompt. It reports false when it was already empty.
func (s *Search) Clear() bool {
	if s.Value == "" && s.Cursor == 0 {
		return false
	}
	s.Set("", 0)
	return true
}

// CursorPos returns the caret offset clamped to the text.
func (s *Search) CursorPos() int {
	runes := []rune(s.Value)
	if s.Cursor < 0 {
		return 0
	}
	if s.Cursor > len(runes) {
		return len(runes)
	}
	return s.Cursor
}

// Insert inserts text at the caret.
func (s *Search) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(s.Value)
	pos := s.CursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	s.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward deletes the rune before the caret.
func (s *Search) DeleteRuneBackward() bool {
	runes := []rune(s.Value)
	pos := s.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	s.Set(string(updated), pos-1)
	return true
}

// DeleteWordBackward deletes the word preceding the caret together with any
// spaces between it and the caret.
func (s *Search) DeleteWordBackward() bool {
	runes := []rune(s.Value)
	pos := s.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	s.Set(string(updated), i)
	return true
}

// MoveStart moves the caret to the start.
func (s *Search) MoveStart() bool {
	if s.CursorPos() == 0 {
		return false
	}
	s.Cursor = 0
	return true
}

// MoveEnd moves the caret to the end.
func (s *Search) MoveEnd() bool {
	end := len([]rune(s.Value))
	if s.CursorPos() == end {
		return false
	}
	s.Cursor = end
	return true
}

// MoveWordBackward moves the caret to the start of the previous word.
func (s *Search) MoveWordBackward() bool {
	runes := []rune(s.Value)
	pos := s.CursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	s.Cursor = i
	return true
}

// MoveWordForward moves the caret past the next word.
func (s *Search) MoveWordForward() bool {
	runes := []rune(s.Value)
	pos := s.CursorPos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	if i == pos {
		return false
	}
	s.Cursor = i
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
