// Package ui contains the Bubble Tea program that renders the weapon browser.
// The Model type focuses on message orchestration; dedicated helpers own
// navigation, text input, rendering and image resolution.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, mouse wheel).
//   - Key presses map to browser operations: left/right navigate, up/down pick
//     a category, esc clears the search, ctrl+l flips the locale. Everything
//     else is treated as search prompt editing (internal/ui/input.go).
//
// State ownership:
//   - internal/browser.Machine owns category, search term, selection and
//     locale. The model subscribes to its snapshots and renders only from the
//     latest one.
//   - internal/ui/state holds presentation-only state: the search prompt caret
//     and the sidebar viewport.
//   - Labels go through an i18n.Dictionary; the model never branches on the
//     locale itself.
package ui
