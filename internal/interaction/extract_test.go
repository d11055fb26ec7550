package interaction

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/voxgrid/internal/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSheet(book, title string, grid sheet.RawGrid) sheet.Sheet {
	return sheet.New(sheet.DefaultClassifier(), book, book, title, grid)
}

func fixtureSheets() []sheet.Sheet {
	return []sheet.Sheet{
		newSheet("skill.xlsx", "Intents@en-US", sheet.RawGrid{
			{"Intent", "slotName", "slotType", "environment", "platform", "events", "startIntent", "endIntent", "signInRequired"},
			{"LaunchIntent", "", "", "", "", "", "yes", "", ""},
			{"BookIntent", "{city}", "CITY", "staging", "dialogflow", "BOOK, RESERVE", "", "", "yes"},
			{"", "date", "@sys.date"},
			{"", "city", "CITY"},
			{"AMAZON.StopIntent", "", "", "production", "", "", "", "yes"},
		}),
		newSheet("skill.xlsx", "UserSays@en-US", sheet.RawGrid{
			{"LaunchIntent", "BookIntent", "Unknown"},
			{"hi", "book {city}", "huh"},
			{"hello", "", ""},
			{"", "reserve {city} on {date}"},
		}),
		newSheet("skill.xlsx", "Invocation@en-US", sheet.RawGrid{
			{"invocationName", "environment", "locale"},
			{"my skill", "staging, production"},
			{"mein skill", "production", "de-DE"},
			{"", "staging"},
			{"my skill", "staging"},
		}),
		newSheet("skill.xlsx", "Notes", sheet.RawGrid{{"anything"}, {"x"}}),
	}
}

func TestExtract_Intents(t *testing.T) {
	t.Parallel()

	m := Extract(fixtureSheets())

	require.Len(t, m.Intents, 3)
	want := Intent{
		Name:           "BookIntent",
		Locale:         "en-US",
		Samples:        []string{"book {city}", "reserve {city} on {date}"},
		Events:         []string{"BOOK", "RESERVE"},
		Slots:          []Slot{{Name: "city", Type: "CITY"}, {Name: "date", Type: "@sys.date"}},
		Environments:   []string{"staging"},
		Platforms:      []string{"dialogflow"},
		SignInRequired: true,
	}
	if diff := cmp.Diff(want, m.Intents[1]); diff != "" {
		t.Errorf("intent mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, m.Intents[0].StartIntent)
	assert.Equal(t, []string{"hi", "hello"}, m.Intents[0].Samples)
	assert.True(t, m.Intents[2].EndIntent)
	assert.Empty(t, m.Intents[2].Samples)
}

func TestExtract_Invocations(t *testing.T) {
	t.Parallel()

	m := Extract(fixtureSheets())

	want := []Invocation{
		{Locale: "en-US", Environment: "staging", Name: "my skill"},
		{Locale: "en-US", Environment: "production", Name: "my skill"},
		{Locale: "de-DE", Environment: "production", Name: "mein skill"},
	}
	assert.Equal(t, want, m.Invocations)
	assert.Equal(t, []string{"staging", "production"}, m.Environments())
	assert.Equal(t, []string{"en-US", "de-DE"}, m.Locales())

	inv, ok := m.PrimaryInvocation("production")
	require.True(t, ok)
	assert.Equal(t, "en-US", inv.Locale)
	_, ok = m.PrimaryInvocation("qa")
	assert.False(t, ok)
}

func TestExtract_DefaultEnvironment(t *testing.T) {
	t.Parallel()

	m := Extract([]sheet.Sheet{newSheet("b", "Invocation@fr-FR", sheet.RawGrid{{"invocationName"}, {"mon skill"}})})

	assert.Equal(t, []Invocation{{Locale: "fr-FR", Environment: DefaultEnvironment, Name: "mon skill"}}, m.Invocations)
}

func TestModel_IntentsFor(t *testing.T) {
	t.Parallel()

	m := Extract(fixtureSheets())

	names := func(in []Intent) []string {
		var out []string
		for _, i := range in {
			out = append(out, i.Name)
		}
		return out
	}
	assert.Equal(t, []string{"LaunchIntent", "BookIntent"}, names(m.IntentsFor("en-US", "staging", "dialogflow")))
	assert.Equal(t, []string{"LaunchIntent"}, names(m.IntentsFor("en-US", "staging", "actionsOnGoogle")))
	assert.Equal(t, []string{"LaunchIntent", "AMAZON.StopIntent"}, names(m.IntentsFor("en-US", "production", "dialogflow")))
	assert.Empty(t, m.IntentsFor("de-DE", "production", "dialogflow"))
}

func TestExtract_Content(t *testing.T) {
	t.Parallel()

	sheets := []sheet.Sheet{
		newSheet("content.xlsx", "Views@en-US", sheet.RawGrid{
			{"path", "value"},
			{"Launch.say", "Welcome!"},
			{"", "orphan"},
		}),
		newSheet("content.xlsx", "Views", sheet.RawGrid{
			{"path", "en-US", "de-DE"},
			{"Stop.say", "Bye", "Tschüss"},
			{"Help.say", "Help", ""},
		}),
		newSheet("content.xlsx", "Synonyms", sheet.RawGrid{
			{"CITY", "COLOR"},
			{"paris", "red"},
			{"london"},
		}),
		newSheet("content.xlsx", "Downloads-Fun Facts@en-US", sheet.RawGrid{
			{"fact", "source"},
			{"Cats sleep a lot", "wiki"},
		}),
	}

	m := Extract(sheets)

	assert.Equal(t, []View{
		{Locale: "en-US", Path: "Launch.say", Value: "Welcome!"},
		{Locale: "en-US", Path: "Stop.say", Value: "Bye"},
		{Locale: "de-DE", Path: "Stop.say", Value: "Tschüss"},
		{Locale: "en-US", Path: "Help.say", Value: "Help"},
	}, m.Views)
	assert.Equal(t, []SynonymSet{
		{Spreadsheet: "content", Name: "CITY", Values: []string{"paris", "london"}},
		{Spreadsheet: "content", Name: "COLOR", Values: []string{"red"}},
	}, m.Synonyms)
	require.Len(t, m.Downloads, 1)
	assert.Equal(t, "fun-facts", m.Downloads[0].Name)
	assert.Equal(t, "en-US", m.Downloads[0].Locale)
	assert.Len(t, m.Downloads[0].Rows, 1)
}

func TestKebab(t *testing.T) {
	t.Parallel()

	testCases := map[string]string{
		"My Skill":        "my-skill",
		"production":      "production",
		"LiveEnv":         "live-env",
		"XMLParser":       "xml-parser",
		"-Fun Facts":      "fun-facts",
		"skill2go":        "skill-2-go",
		"  ":              "",
		"Über Größe":      "über-größe",
		"already-kebab-1": "already-kebab-1",
	}
	for in, want := range testCases {
		assert.Equal(t, want, Kebab(in), "Kebab(%q)", in)
	}
}
