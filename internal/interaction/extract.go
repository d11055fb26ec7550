package interaction

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/specialistvlad/voxgrid/internal/sheet"
)

// Column names read from Intents tabs.
const (
	ColumnIntent         = "Intent"
	ColumnSlotName       = "slotName"
	ColumnSlotType       = "slotType"
	ColumnEnvironment    = "environment"
	ColumnPlatform       = "platform"
	ColumnEvents         = "events"
	ColumnStartIntent    = "startIntent"
	ColumnEndIntent      = "endIntent"
	ColumnSignInRequired = "signInRequired"
)

// Column names read from Invocation tabs.
const (
	ColumnInvocationName = "invocationName"
	ColumnLocale         = "locale"
)

// Column names read from Views tabs.
const (
	ColumnPath  = "path"
	ColumnValue = "value"
)

// DefaultEnvironment is used for invocations that name none.
const DefaultEnvironment = "staging"

// Extract builds the interaction model from classified sheets. Sheets of
// TypeNone are ignored.
func Extract(sheets []sheet.Sheet) *Model {
	m := &Model{}
	for _, s := range sheets {
		if s.Type == sheet.TypeNone {
			continue
		}
		m.Sheets = append(m.Sheets, s)
		switch s.Type {
		case sheet.TypeIntents:
			m.Intents = append(m.Intents, extractIntents(s)...)
		case sheet.TypeInvocations:
			m.Invocations = append(m.Invocations, extractInvocations(s)...)
		case sheet.TypeViews:
			m.Views = append(m.Views, extractViews(s)...)
		case sheet.TypeSynonyms:
			m.Synonyms = append(m.Synonyms, extractSynonyms(s)...)
		case sheet.TypeDownloads:
			m.Downloads = append(m.Downloads, Download{
				Name:   downloadName(s.SheetTitle),
				Locale: s.Locale(),
				Rows:   s.Data,
			})
		}
	}

	samples := extractSamples(sheets)
	for i := range m.Intents {
		in := &m.Intents[i]
		in.Samples = append(in.Samples, samples[sampleKey{in.Locale, in.Name}]...)
	}
	return m
}

// extractIntents reads one Intents tab. A row with an empty Intent cell
// continues the previous intent and only contributes its slot.
func extractIntents(s sheet.Sheet) []Intent {
	var out []Intent
	locale := s.Locale()
	for _, row := range s.Data {
		name := row.String(ColumnIntent)
		if name == "" {
			if len(out) > 0 {
				addSlot(&out[len(out)-1], row)
			}
			continue
		}
		in := Intent{
			Name:           name,
			Locale:         locale,
			Events:         row.List(ColumnEvents),
			Environments:   row.List(ColumnEnvironment),
			Platforms:      row.List(ColumnPlatform),
			StartIntent:    row.Bool(ColumnStartIntent),
			EndIntent:      row.Bool(ColumnEndIntent),
			SignInRequired: row.Bool(ColumnSignInRequired),
		}
		addSlot(&in, row)
		out = append(out, in)
	}
	return out
}

func addSlot(in *Intent, row sheet.Row) {
	name := strings.Trim(row.String(ColumnSlotName), "{}")
	if name == "" {
		return
	}
	for _, s := range in.Slots {
		if s.Name == name {
			return
		}
	}
	in.Slots = append(in.Slots, Slot{Name: name, Type: row.String(ColumnSlotType)})
}

type sampleKey struct {
	locale string
	intent string
}

// extractSamples reads every utterance tab: each column header names an
// intent and every non-empty cell below it is one sample.
func extractSamples(sheets []sheet.Sheet) map[sampleKey][]string {
	out := make(map[sampleKey][]string)
	for _, s := range sheets {
		if s.Type != sheet.TypeUtterances {
			continue
		}
		locale := s.Locale()
		for _, col := range s.Columns {
			if col == "" {
				continue
			}
			key := sampleKey{locale, col}
			for _, row := range s.Data {
				if sample := row.String(col); sample != "" {
					out[key] = append(out[key], sample)
				}
			}
		}
	}
	return out
}

func extractInvocations(s sheet.Sheet) []Invocation {
	var out []Invocation
	for _, row := range s.Data {
		name := row.String(ColumnInvocationName)
		if name == "" {
			continue
		}
		locale := row.String(ColumnLocale)
		if locale == "" {
			locale = s.Locale()
		}
		envs := row.List(ColumnEnvironment)
		if len(envs) == 0 {
			envs = []string{DefaultEnvironment}
		}
		for _, env := range envs {
			inv := Invocation{Locale: locale, Environment: env, Name: name}
			if !slices.Contains(out, inv) {
				out = append(out, inv)
			}
		}
	}
	return out
}

// extractViews reads a Views tab. A tab with a value column holds the
// tab's own locale; otherwise every column besides path is a locale.
func extractViews(s sheet.Sheet) []View {
	var out []View
	perLocale := !slices.Contains(s.Columns, ColumnValue)
	for _, row := range s.Data {
		path := row.String(ColumnPath)
		if path == "" {
			continue
		}
		if !perLocale {
			out = append(out, View{Locale: s.Locale(), Path: path, Value: row.Value(ColumnValue)})
			continue
		}
		for _, col := range s.Columns {
			if col == ColumnPath || col == "" {
				continue
			}
			if v := row.Value(col); v != nil {
				out = append(out, View{Locale: col, Path: path, Value: v})
			}
		}
	}
	return out
}

func extractSynonyms(s sheet.Sheet) []SynonymSet {
	var out []SynonymSet
	book := strings.TrimSuffix(s.SpreadsheetTitle, filepath.Ext(s.SpreadsheetTitle))
	for _, col := range s.Columns {
		if col == "" {
			continue
		}
		set := SynonymSet{Spreadsheet: book, Name: col}
		for _, row := range s.Data {
			if v := row.String(col); v != "" {
				set.Values = append(set.Values, v)
			}
		}
		out = append(out, set)
	}
	return out
}

// downloadName strips the Downloads marker and locale from a tab title:
// "Downloads-Facts@en-US" becomes "facts".
func downloadName(title string) string {
	if i := strings.LastIndex(title, "@"); i >= 0 {
		title = title[:i]
	}
	title = strings.Replace(title, "Downloads", "", 1)
	name := Kebab(title)
	if name == "" {
		return "downloads"
	}
	return name
}
