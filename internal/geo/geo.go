// Package geo resolves free-text country names to ISO-3 codes for the
// world map.
package geo

import (
	"strings"

	"github.com/sirupsen/logrus"

	"tamvonku/travel-stats/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Resolver maps country names to ISO-3 codes. The index is keyed by
// lowercased name, so lookups are case-insensitive regardless of how the
// underlying table cases its entries.
type Resolver struct {
	index map[string]string
}

// NewResolver creates a Resolver backed by the builtin country table.
func NewResolver() *Resolver {
	r := &Resolver{index: make(map[string]string, len(countryToISO))}
	r.ApplyOverrides(countryToISO)
	return r
}

// ApplyOverrides merges additional name-to-code mappings over the current
// index. Later entries win on name collisions.
func (r *Resolver) ApplyOverrides(mappings map[string]string) {
	for name, code := range mappings {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || code == "" {
			continue
		}
		r.index[key] = strings.ToUpper(strings.TrimSpace(code))
	}
}

// Lookup resolves a single country name to its ISO-3 code.
func (r *Resolver) Lookup(name string) (string, bool) {
	code, ok := r.index[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// Resolve maps a sequence of country names to the subset resolvable to
// ISO-3 codes, one entry per distinct code with the first occurrence's name
// attached. Unresolvable names are excluded from the result, not reported
// as errors.
func (r *Resolver) Resolve(names []string) []models.CountryCode {
	seen := make(map[string]bool)
	var resolved []models.CountryCode

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		code, ok := r.Lookup(name)
		if !ok {
			log.WithField("country", name).Debug("Country name not resolvable to ISO-3, excluded from map")
			continue
		}
		if seen[code] {
			continue
		}
		seen[code] = true
		resolved = append(resolved, models.CountryCode{Country: name, ISO3: code})
	}

	return resolved
}
