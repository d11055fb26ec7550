package interaction

import (
	"slices"
	"strings"

	"github.com/specialistvlad/voxgrid/internal/sheet"
)

// Slot is a named, typed parameter referenced from samples as {name}.
type Slot struct {
	Name string
	Type string
}

// Intent is one conversational action.
type Intent struct {
	Name           string
	Locale         string
	Samples        []string
	Events         []string
	Slots          []Slot
	Environments   []string
	Platforms      []string
	StartIntent    bool
	EndIntent      bool
	SignInRequired bool
}

// AvailableIn reports whether the intent applies to environment and platform.
// Empty environment or platform lists mean "everywhere".
func (i Intent) AvailableIn(environment, platform string) bool {
	return matches(i.Environments, environment) && matches(i.Platforms, platform)
}

// Invocation is one (locale, environment) deployment target.
type Invocation struct {
	Locale      string
	Environment string
	Name        string
}

// View is one localized response string addressed by a dotted path.
type View struct {
	Locale string
	Path   string
	Value  any
}

// SynonymSet is one named list of synonyms from a Synonyms tab.
type SynonymSet struct {
	Spreadsheet string
	Name        string
	Values      []string
}

// Download is a tab exported verbatim as a JSON array of rows.
type Download struct {
	Name   string
	Locale string
	Rows   []sheet.Row
}

// Model is everything the generators need, extracted from one ingestion.
type Model struct {
	Intents     []Intent
	Invocations []Invocation
	Views       []View
	Synonyms    []SynonymSet
	Downloads   []Download
	// Sheets keeps the classified sheets for generators that need them raw.
	Sheets []sheet.Sheet
}

// IntentsFor returns the intents authored for locale that apply to
// environment and platform, in sheet order.
func (m *Model) IntentsFor(locale, environment, platform string) []Intent {
	var out []Intent
	for _, in := range m.Intents {
		if in.Locale == locale && in.AvailableIn(environment, platform) {
			out = append(out, in)
		}
	}
	return out
}

// Environments returns the distinct invocation environments in first-seen
// order.
func (m *Model) Environments() []string {
	var out []string
	for _, inv := range m.Invocations {
		if !slices.Contains(out, inv.Environment) {
			out = append(out, inv.Environment)
		}
	}
	return out
}

// Locales returns the distinct invocation locales in first-seen order.
func (m *Model) Locales() []string {
	var out []string
	for _, inv := range m.Invocations {
		if !slices.Contains(out, inv.Locale) {
			out = append(out, inv.Locale)
		}
	}
	return out
}

// PrimaryInvocation returns the first invocation declared for environment.
func (m *Model) PrimaryInvocation(environment string) (Invocation, bool) {
	for _, inv := range m.Invocations {
		if inv.Environment == environment {
			return inv, true
		}
	}
	return Invocation{}, false
}

func matches(list []string, want string) bool {
	if len(list) == 0 {
		return true
	}
	for _, v := range list {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}
