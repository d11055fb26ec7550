package manifest

import (
	"strings"

	"github.com/specialistvlad/voxgrid/internal/sheet"
)

// Manifest is the publishing data of one locale. Values are strings,
// booleans, []any, or nested map[string]any.
type Manifest map[string]any

// Set is a collection of manifests keyed by locale.
type Set map[string]Manifest

// Column names read from Publishing tabs.
const (
	ColumnKey         = "key"
	ColumnValue       = "value"
	ColumnEnvironment = "environment"
)

// entry is one publishing row.
type entry struct {
	key          string
	value        any
	environments []string
}

// Builder folds Publishing tabs into per-environment manifests.
type Builder struct {
	// locale -> rows in sheet order
	entries map[string][]entry
}

// NewBuilder collects the publishing rows of every TypePublishing sheet.
// Rows without a key are skipped.
func NewBuilder(sheets []sheet.Sheet) *Builder {
	b := &Builder{entries: make(map[string][]entry)}
	for _, s := range sheets {
		if s.Type != sheet.TypePublishing {
			continue
		}
		locale := s.Locale()
		for _, row := range s.Data {
			key := row.String(ColumnKey)
			if key == "" {
				continue
			}
			b.entries[locale] = append(b.entries[locale], entry{
				key:          key,
				value:        row.Value(ColumnValue),
				environments: row.List(ColumnEnvironment),
			})
		}
	}
	return b
}

// Base returns the manifest of every locale built only from rows that carry
// no environment.
func (b *Builder) Base() Set {
	return b.layer(func(e entry) bool { return len(e.environments) == 0 })
}

// Overlay returns the manifest of every locale built only from rows that
// name environment.
func (b *Builder) Overlay(environment string) Set {
	return b.layer(func(e entry) bool { return hasEnvironment(e.environments, environment) })
}

// ForEnvironment merges the base layer with the overlay for environment.
func (b *Builder) ForEnvironment(environment string) Set {
	base := b.Base()
	overlay := b.Overlay(environment)
	out := make(Set, len(base))
	for locale, m := range base {
		out[locale] = MergeManifests(m, overlay[locale])
	}
	return out
}

func (b *Builder) layer(keep func(entry) bool) Set {
	out := make(Set, len(b.entries))
	for locale, entries := range b.entries {
		m := make(map[string]any)
		for _, e := range entries {
			if keep(e) {
				SetPath(m, e.key, e.value)
			}
		}
		out[locale] = Manifest(m)
	}
	return out
}

func hasEnvironment(envs []string, environment string) bool {
	for _, e := range envs {
		if strings.EqualFold(e, environment) {
			return true
		}
	}
	return false
}
