package sheet

import "strings"

// Type is the semantic kind of a tab.
type Type string

const (
	TypeNone        Type = "none"
	TypeIntents     Type = "intents"
	TypeUtterances  Type = "utterances"
	TypeInvocations Type = "invocations"
	TypePublishing  Type = "publishing"
	TypeViews       Type = "views"
	TypeSynonyms    Type = "synonyms"
	TypeDownloads   Type = "downloads"
)

// ParseType maps a type name from configuration onto a Type. Unknown names
// return false.
func ParseType(name string) (Type, bool) {
	switch t := Type(strings.ToLower(name)); t {
	case TypeNone, TypeIntents, TypeUtterances, TypeInvocations,
		TypePublishing, TypeViews, TypeSynonyms, TypeDownloads:
		return t, true
	}
	return TypeNone, false
}

// Marker pairs a Type with the title substring that selects it.
type Marker struct {
	Type   Type
	Marker string
}

// Classifier assigns a Type to a tab from its title. The first marker, in
// table order, contained in the title wins.
type Classifier struct {
	markers []Marker
}

// DefaultMarkers is the built-in marker table, in match order.
var DefaultMarkers = []Marker{
	{TypeIntents, "Intents"},
	{TypeUtterances, "UserSays"},
	{TypeUtterances, "Utterances"},
	{TypeInvocations, "Invocation"},
	{TypePublishing, "Publishing"},
	{TypeViews, "Views"},
	{TypeSynonyms, "Synonyms"},
	{TypeDownloads, "Downloads"},
}

// NewClassifier returns a classifier over the given table. Matching is case
// sensitive.
func NewClassifier(markers ...Marker) *Classifier {
	table := make([]Marker, len(markers))
	copy(table, markers)
	return &Classifier{markers: table}
}

// DefaultClassifier returns a classifier over DefaultMarkers.
func DefaultClassifier() *Classifier {
	return NewClassifier(DefaultMarkers...)
}

// WithPrefix returns a classifier that consults extra before c's own table.
func (c *Classifier) WithPrefix(extra ...Marker) *Classifier {
	table := make([]Marker, 0, len(extra)+len(c.markers))
	table = append(table, extra...)
	table = append(table, c.markers...)
	return &Classifier{markers: table}
}

// Classify returns the Type for title, or TypeNone.
func (c *Classifier) Classify(title string) Type {
	for _, m := range c.markers {
		if m.Marker != "" && strings.Contains(title, m.Marker) {
			return m.Type
		}
	}
	return TypeNone
}
