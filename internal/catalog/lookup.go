package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Lookup finds a profile by name, case-insensitive.
func (c *Catalog) Lookup(name string) (Profile, bool) {
	for _, p := range c.profiles {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, true
		}
	}
	return Profile{}, false
}

// Nearest returns the profile whose name is closest to the query by
// edit distance, along with that distance. Useful for "did you mean"
// suggestions after a failed Lookup. Returns false when the catalog
// is empty.
func (c *Catalog) Nearest(name string) (Profile, int, bool) {
	query := strings.ToUpper(strings.TrimSpace(name))
	best := -1
	bestDist := 0
	for i, p := range c.profiles {
		dist := levenshtein.ComputeDistance(query, strings.ToUpper(p.Name))
		if best < 0 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best < 0 {
		return Profile{}, 0, false
	}
	return c.profiles[best], bestDist, true
}
