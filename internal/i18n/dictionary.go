package i18n

import (
	"bytes"
	"embed"
	"io"
	"os"
	"strings"

	"github.com/go-errors/errors"
	"github.com/imdario/mergo"
	"gopkg.in/yaml.v3"
)

//go:embed locales/dictionary.yaml
var embeddedFS embed.FS

// dictionaryFile mirrors the on-disk layout of a dictionary.
type dictionaryFile struct {
	Entries  map[string]map[string]string `yaml:"entries"`
	Prefixes []prefixFile                 `yaml:"prefixes"`
}

type prefixFile struct {
	Source string            `yaml:"source"`
	To     map[string]string `yaml:"to"`
}

type prefixRule struct {
	source  string
	targets map[Locale]string
}

// Dictionary maps canonical source strings to their equivalents in the other
// locale. Lookups never fail: a missing translation yields the source text.
type Dictionary struct {
	raw      dictionaryFile
	entries  map[string]map[Locale]string
	prefixes []prefixRule
}

var defaultDictionary = mustLoadEmbedded()

// DefaultDictionary returns the built-in dictionary.
func DefaultDictionary() *Dictionary {
	return defaultDictionary
}

// LoadDictionary decodes a YAML dictionary.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	var file dictionaryFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return compile(dictionaryFile{})
		}
		return nil, errors.WrapPrefix(err, "decode dictionary", 0)
	}
	return compile(file)
}

// LoadDictionaryFile decodes the dictionary stored at path.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return LoadDictionary(bytes.NewReader(data))
}

// Merge returns a new dictionary with overlay entries taking precedence over d.
// Prefix rules of the overlay replace rules with the same source.
func (d *Dictionary) Merge(overlay *Dictionary) (*Dictionary, error) {
	if overlay == nil {
		return d, nil
	}
	merged := cloneFile(d.raw)
	if err := mergo.Merge(&merged, cloneFile(overlay.raw), mergo.WithOverride, mergo.WithAppendSlice); err != nil {
		return nil, errors.WrapPrefix(err, "merge dictionary", 0)
	}
	return compile(merged)
}

// Len reports the number of translatable source strings.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Translate resolves t for the given locale.
func (d *Dictionary) Translate(t Text, locale Locale) string {
	if t == nil {
		return ""
	}
	return t.translate(d, locale)
}

// T is shorthand for Translate(Key(source), locale).
func (d *Dictionary) T(source string, locale Locale) string {
	return d.Translate(Key(source), locale)
}

func (d *Dictionary) lookup(source string, locale Locale) string {
	if d == nil {
		return source
	}
	if targets, ok := d.entries[source]; ok {
		if value := targets[locale]; value != "" {
			return value
		}
	}
	for _, rule := range d.prefixes {
		if !strings.HasPrefix(source, rule.source) {
			continue
		}
		if target := rule.targets[locale]; target != "" {
			return target + strings.TrimPrefix(source, rule.source)
		}
	}
	return source
}

func compile(file dictionaryFile) (*Dictionary, error) {
	d := &Dictionary{
		raw:     cloneFile(file),
		entries: make(map[string]map[Locale]string, len(file.Entries)),
	}
	for source, targets := range file.Entries {
		if strings.TrimSpace(source) == "" {
			return nil, errors.New("dictionary entry with blank source")
		}
		converted, err := convertTargets(source, targets)
		if err != nil {
			return nil, err
		}
		d.entries[source] = converted
	}
	index := map[string]int{}
	for _, prefix := range file.Prefixes {
		if strings.TrimSpace(prefix.Source) == "" {
			return nil, errors.New("dictionary prefix rule with blank source")
		}
		converted, err := convertTargets(prefix.Source, prefix.To)
		if err != nil {
			return nil, err
		}
		rule := prefixRule{source: prefix.Source, targets: converted}
		if i, ok := index[prefix.Source]; ok {
			d.prefixes[i] = rule
			continue
		}
		index[prefix.Source] = len(d.prefixes)
		d.prefixes = append(d.prefixes, rule)
	}
	return d, nil
}

func convertTargets(source string, targets map[string]string) (map[Locale]string, error) {
	out := make(map[Locale]string, len(targets))
	for raw, value := range targets {
		locale := Locale(strings.ToLower(strings.TrimSpace(raw)))
		if !locale.Valid() {
			return nil, errors.Errorf("dictionary entry %q: unsupported locale %q", source, raw)
		}
		out[locale] = value
	}
	return out, nil
}

func cloneFile(file dictionaryFile) dictionaryFile {
	out := dictionaryFile{
		Entries:  make(map[string]map[string]string, len(file.Entries)),
		Prefixes: make([]prefixFile, 0, len(file.Prefixes)),
	}
	for source, targets := range file.Entries {
		dup := make(map[string]string, len(targets))
		for k, v := range targets {
			dup[k] = v
		}
		out.Entries[source] = dup
	}
	for _, prefix := range file.Prefixes {
		to := make(map[string]string, len(prefix.To))
		for k, v := range prefix.To {
			to[k] = v
		}
		out.Prefixes = append(out.Prefixes, prefixFile{Source: prefix.Source, To: to})
	}
	return out
}

func mustLoadEmbedded() *Dictionary {
	data, err := embeddedFS.ReadFile("locales/dictionary.yaml")
	if err != nil {
		panic(err)
	}
	d, err := LoadDictionary(bytes.NewReader(data))
	if err != nil {
		panic(err)
	}
	return d
}
