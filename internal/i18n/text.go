package i18n

// Text is anything the dictionary can render for a locale.
type Text interface {
	translate(d *Dictionary, locale Locale) string
}

// Key is a canonical source string looked up in the dictionary.
type Key string

func (k Key) translate(d *Dictionary, locale Locale) string {
	return d.lookup(string(k), locale)
}

// Pair is an inline bilingual literal. An empty side falls back to the
// English text.
type Pair struct {
	EN string
	PT string
}

// P builds a Pair.
func P(en, pt string) Pair {
	return Pair{EN: en, PT: pt}
}

func (p Pair) translate(_ *Dictionary, locale Locale) string {
	if locale == PT && p.PT != "" {
		return p.PT
	}
	return p.EN
}

// Translate resolves t with the built-in dictionary.
func Translate(t Text, locale Locale) string {
	return DefaultDictionary().Translate(t, locale)
}
