package catalog

import (
	"bytes"
	"embed"
	"io"
	"os"
	"strings"

	"github.com/go-errors/errors"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Stat is one labelled value on a weapon card.
type Stat struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Weapon is a single record of the dataset.
type Weapon struct {
	Name    string `yaml:"name"`
	Rarity  Rarity `yaml:"rarity"`
	Primary string `yaml:"primary"`
	Image   string `yaml:"image"`
	Stats   []Stat `yaml:"stats"`
}

// Category groups weapons in the sidebar.
type Category struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

type datasetFile struct {
	Categories []Category           `yaml:"categories"`
	Weapons    map[string][]Weapon `yaml:"weapons"`
}

// Dataset is the read-only weapon catalogue for a session.
type Dataset struct {
	categories []Category
	weapons    map[string][]Weapon
}

//go:embed data/weapons.yaml
var embeddedFS embed.FS

// DefaultSource names the embedded dataset in logs.
const DefaultSource = "embedded"

// New validates the inputs and builds a Dataset from copies of them.
func New(categories []Category, weapons map[string][]Weapon) (*Dataset, error) {
	d := &Dataset{
		categories: append([]Category(nil), categories...),
		weapons:    make(map[string][]Weapon, len(weapons)),
	}
	for id, list := range weapons {
		d.weapons[id] = cloneWeapons(list)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load decodes a YAML (or JSON) dataset.
func Load(r io.Reader) (*Dataset, error) {
	var file datasetFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("dataset is empty")
		}
		return nil, errors.WrapPrefix(err, "decode dataset", 0)
	}
	return New(file.Categories, file.Weapons)
}

// LoadFile decodes the dataset stored at path.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	d, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapPrefix(err, path, 0)
	}
	return d, nil
}

// Default returns the embedded dataset.
func Default() (*Dataset, error) {
	data, err := embeddedFS.ReadFile("data/weapons.yaml")
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return Load(bytes.NewReader(data))
}

// Validate checks the structural rules of the dataset. Missing labels default
// to the category id.
func (d *Dataset) Validate() error {
	if len(d.categories) == 0 {
		return errors.New("dataset declares no categories")
	}
	seen := make(map[string]struct{}, len(d.categories))
	for i, category := range d.categories {
		if strings.TrimSpace(category.ID) == "" {
			return errors.Errorf("category #%d has an empty id", i+1)
		}
		if _, dup := seen[category.ID]; dup {
			return errors.Errorf("category %q declared twice", category.ID)
		}
		seen[category.ID] = struct{}{}
		if category.Label == "" {
			d.categories[i].Label = category.ID
		}
	}
	for id, list := range d.weapons {
		if _, ok := seen[id]; !ok {
			return errors.Errorf("weapons listed under undeclared category %q", id)
		}
		names := make(map[string]struct{}, len(list))
		for i, weapon := range list {
			if strings.TrimSpace(weapon.Name) == "" {
				return errors.Errorf("category %q: weapon #%d has an empty name", id, i+1)
			}
			if _, dup := names[weapon.Name]; dup {
				return errors.Errorf("category %q: weapon %q listed twice", id, weapon.Name)
			}
			names[weapon.Name] = struct{}{}
			if weapon.Rarity == RarityUnknown {
				return errors.Errorf("category %q: weapon %q has no rarity", id, weapon.Name)
			}
		}
	}
	return nil
}

// Categories returns the categories in display order.
func (d *Dataset) Categories() []Category {
	return append([]Category(nil), d.categories...)
}

// Category looks up a category by id.
func (d *Dataset) Category(id string) (Category, bool) {
	return lo.Find(d.categories, func(c Category) bool { return c.ID == id })
}

// DefaultCategory returns the first category id.
func (d *Dataset) DefaultCategory() string {
	if len(d.categories) == 0 {
		return ""
	}
	return d.categories[0].ID
}

// Weapons returns a copy of the ordered weapon list for a category. Unknown
// categories yield nil.
func (d *Dataset) Weapons(category string) []Weapon {
	list, ok := d.weapons[category]
	if !ok {
		return nil
	}
	return cloneWeapons(list)
}

// Count returns the total number of weapons.
func (d *Dataset) Count() int {
	total := 0
	for _, list := range d.weapons {
		total += len(list)
	}
	return total
}

// ResolveCategory finds the category best matching a user supplied query:
// an exact id or label match first, then the closest fuzzy match.
func (d *Dataset) ResolveCategory(query string) (Category, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Category{}, false
	}
	if category, ok := lo.Find(d.categories, func(c Category) bool {
		return strings.EqualFold(c.ID, trimmed) || strings.EqualFold(c.Label, trimmed)
	}); ok {
		return category, true
	}
	ids := lo.Map(d.categories, func(c Category, _ int) string { return c.ID })
	ranks := fuzzy.RankFindNormalizedFold(trimmed, ids)
	if len(ranks) == 0 {
		return Category{}, false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return d.categories[best.OriginalIndex], true
}

func cloneWeapons(list []Weapon) []Weapon {
	if list == nil {
		return nil
	}
	out := make([]Weapon, len(list))
	for i, weapon := range list {
		weapon.Stats = append([]Stat(nil), weapon.Stats...)
		out[i] = weapon
	}
	return out
}
