package catalog

import (
	"strings"
	"unicode"

	"github.com/go-errors/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Rarity grades a weapon. The dataset spells rarities in Portuguese, which is
// also the source string handed to the translation layer.
type Rarity int

const (
	RarityUnknown Rarity = iota
	Common
	Uncommon
	Rare
	Epic
)

var rarityNames = map[Rarity]struct {
	canonical string
	english   string
}{
	Common:   {"Comum", "Common"},
	Uncommon: {"Incomum", "Uncommon"},
	Rare:     {"Raro", "Rare"},
	Epic:     {"Épico", "Epic"},
}

// ParseRarity accepts either locale's spelling, ignoring case and accents.
func ParseRarity(value string) (Rarity, bool) {
	key := foldAccents(strings.ToLower(strings.TrimSpace(value)))
	for rarity, names := range rarityNames {
		if key == foldAccents(strings.ToLower(names.canonical)) || key == strings.ToLower(names.english) {
			return rarity, true
		}
	}
	return RarityUnknown, false
}

// Canonical returns the dataset spelling.
func (r Rarity) Canonical() string {
	if names, ok := rarityNames[r]; ok {
		return names.canonical
	}
	return ""
}

func (r Rarity) String() string {
	if names, ok := rarityNames[r]; ok {
		return names.english
	}
	return "Unknown"
}

func (r *Rarity) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, ok := ParseRarity(raw)
	if !ok {
		return errors.Errorf("line %d: unknown rarity %q", value.Line, raw)
	}
	*r = parsed
	return nil
}

func (r Rarity) MarshalYAML() (interface{}, error) {
	return r.Canonical(), nil
}

func foldAccents(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, value)
	if err != nil {
		return value
	}
	return out
}
