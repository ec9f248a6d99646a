package i18n

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleIsItsOwnInverse(t *testing.T) {
	for _, locale := range Supported() {
		assert.Equal(t, locale, locale.Toggle().Toggle())
		assert.NotEqual(t, locale, locale.Toggle())
		assert.Equal(t, locale.Toggle(), locale.Other())
	}
	assert.Equal(t, PT, EN.Other())
}

func TestParseLocale(t *testing.T) {
	scenarios := []struct {
		in       string
		expected Locale
	}{
		{"", EN},
		{"en", EN},
		{"EN", EN},
		{"en-US", EN},
		{"pt", PT},
		{"pt-BR", PT},
		{"pt_BR.UTF-8", PT},
		{"pt-PT", PT},
	}
	for _, s := range scenarios {
		t.Run(s.in, func(t *testing.T) {
			got, err := ParseLocale(s.in)
			require.NoError(t, err)
			assert.Equal(t, s.expected, got)
		})
	}
}

func TestParseLocaleRejectsUnsupported(t *testing.T) {
	_, err := ParseLocale("de-DE")
	assert.Error(t, err)
	_, err = ParseLocale("not a locale!")
	assert.Error(t, err)
}

func TestDetectFallsBackToDefault(t *testing.T) {
	assert.Equal(t, PT, detect(func() (string, error) { return "pt", nil }))
	assert.Equal(t, EN, detect(func() (string, error) { return "", errors.New("no LANG") }))
	assert.Equal(t, EN, detect(func() (string, error) { return "fr", nil }))
	assert.Equal(t, EN, detect(func() (string, error) { return "C", nil }))
}

func TestTranslateStatLabels(t *testing.T) {
	d := DefaultDictionary()
	assert.Equal(t, "Damage", d.T("Dano", EN))
	assert.Equal(t, "Dano", d.T("Dano", PT))
	assert.Equal(t, "Fire Rate", d.T("Cadência de Tiro", EN))
	assert.Equal(t, "Queimadura", d.T("Burn", PT))
	assert.Equal(t, "Burn", d.T("Burn", EN))
}

func TestTranslateElementalStatsFromEnglishSource(t *testing.T) {
	d := DefaultDictionary()
	scenarios := []struct {
		source string
		pt     string
	}{
		{"Burn", "Queimadura"},
		{"Fuel", "Combustivel"},
		{"Bleed", "Sangramento"},
	}
	for _, s := range scenarios {
		assert.Equal(t, s.source, d.T(s.source, EN), "english keeps the dataset label")
		assert.Equal(t, s.pt, d.T(s.source, PT))
	}
}

func TestTranslateMissingIsIdentity(t *testing.T) {
	d := DefaultDictionary()
	for _, locale := range Supported() {
		assert.Equal(t, "Headshot Bonus", d.T("Headshot Bonus", locale))
		assert.Equal(t, "", d.T("", locale))
	}
	assert.Equal(t, "Dano", d.T("Dano", Locale("xx")))

	var nilDict *Dictionary
	assert.Equal(t, "Dano", nilDict.T("Dano", EN))
	assert.Equal(t, "", d.Translate(nil, EN))
}

func TestTranslatePrefixRules(t *testing.T) {
	d := DefaultDictionary()
	assert.Equal(t, "PRIMARY WEAPON: ASSAULT RIFLE", d.T("ARMA PRIMÁRIA: ASSAULT RIFLE", EN))
	assert.Equal(t, "MELEE WEAPON: KNIFE", d.T("ARMA CORPO A CORPO: KNIFE", EN))
	assert.Equal(t, "ARMA PRIMÁRIA: ASSAULT RIFLE", d.T("ARMA PRIMÁRIA: ASSAULT RIFLE", PT))
}

func TestTranslatePair(t *testing.T) {
	pair := P("Search", "Buscar")
	assert.Equal(t, "Search", Translate(pair, EN))
	assert.Equal(t, "Buscar", Translate(pair, PT))
	assert.Equal(t, "Only English", Translate(P("Only English", ""), PT))
}

func TestMergeOverridesAndExtends(t *testing.T) {
	overlay, err := LoadDictionary(strings.NewReader(`
entries:
  "Dano":
    en: "DMG"
  "Headshot":
    pt: "Tiro na Cabeça"
prefixes:
  - source: "ARMA PRIMÁRIA:"
    to:
      en: "PRIMARY:"
`))
	require.NoError(t, err)

	merged, err := DefaultDictionary().Merge(overlay)
	require.NoError(t, err)

	assert.Equal(t, "DMG", merged.T("Dano", EN))
	assert.Equal(t, "Tiro na Cabeça", merged.T("Headshot", PT))
	assert.Equal(t, "Ammo", merged.T("Munição", EN))
	assert.Equal(t, "PRIMARY: AR", merged.T("ARMA PRIMÁRIA: AR", EN))
	assert.Equal(t, DefaultDictionary().Len()+1, merged.Len())

	assert.Equal(t, "Damage", DefaultDictionary().T("Dano", EN), "base dictionary must stay untouched")
}

func TestLoadDictionaryRejectsUnknownLocale(t *testing.T) {
	_, err := LoadDictionary(strings.NewReader(`
entries:
  "Dano":
    de: "Schaden"
`))
	assert.Error(t, err)
}

func TestLoadDictionaryEmptyDocument(t *testing.T) {
	d, err := LoadDictionary(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, "Dano", d.T("Dano", EN))
}

func TestLoadDictionaryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  \"Alcance\":\n    en: \"Reach\"\n"), 0o644))

	d, err := LoadDictionaryFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Reach", d.T("Alcance", EN))

	_, err = LoadDictionaryFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
