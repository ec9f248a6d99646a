package ui

import "strings"

// Dataset icons are Font Awesome class lists; the terminal gets a glyph.
var iconGlyphs = map[string]string{
	"fa-crosshairs":       "⌖",
	"fa-box":              "▣",
	"fa-tachometer-alt":   "◷",
	"fa-bullseye":         "◎",
	"fa-ruler-horizontal": "↔",
	"fa-sync":             "↻",
	"fa-running":          "»",
	"fa-fire":             "♨",
	"fa-gas-pump":         "⛽",
	"fa-magnet":           "∩",
	"fa-arrows-alt-h":     "⇔",
	"fa-bomb":             "✹",
	"fa-tint":             "♦",
	"fa-bolt":             "ϟ",
	"fa-burst":            "✺",
	"fa-khanda":           "†",
	"fa-flask":            "⚗",
	"fa-hand-point-right": "☛",
	"fa-list-ul":          "≡",
}

const defaultGlyph = "•"

func iconGlyph(classes string) string {
	for _, class := range strings.Fields(classes) {
		if glyph, ok := iconGlyphs[class]; ok {
			return glyph
		}
	}
	return defaultGlyph
}
