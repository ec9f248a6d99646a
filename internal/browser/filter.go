package browser

import (
	"strings"

	"github.com/atomicstack/weapon-stats/internal/catalog"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// FilterWeapons returns the weapons whose name contains term, ignoring case.
// A term that is blank after trimming matches everything. Matching itself uses
// the term as typed, so surrounding spaces take part in the comparison.
func FilterWeapons(weapons []catalog.Weapon, term string) []catalog.Weapon {
	if strings.TrimSpace(term) == "" {
		return append([]catalog.Weapon(nil), weapons...)
	}
	fold := cases.Fold()
	needle := fold.String(term)
	return lo.Filter(weapons, func(w catalog.Weapon, _ int) bool {
		return strings.Contains(fold.String(w.Name), needle)
	})
}

// Wrap moves index by delta inside a cyclic list of length n. An empty list
// yields index unchanged.
func Wrap(index, delta, n int) int {
	if n <= 0 {
		return index
	}
	next := (index + delta) % n
	if next < 0 {
		next += n
	}
	return next
}
