package content

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/voxgrid/internal/artifact"
	"github.com/specialistvlad/voxgrid/internal/config"
	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/specialistvlad/voxgrid/internal/interaction"
	"github.com/specialistvlad/voxgrid/internal/registry"
	"github.com/specialistvlad/voxgrid/internal/sheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var testPaths = config.Paths{Speech: "speech-assets", Synonyms: "synonyms", Views: "app", Content: "content"}

func TestViews_NestsPathsPerLocale(t *testing.T) {
	t.Parallel()

	got := Views([]interaction.View{
		{Locale: "en-US", Path: "welcome.text", Value: "Hi"},
		{Locale: "en-US", Path: "welcome.reprompt", Value: "Still there?"},
		{Locale: "en-US", Path: "facts[1]", Value: "second"},
		{Locale: "de-DE", Path: "welcome.text", Value: "Hallo"},
		{Locale: "de-DE", Path: "flags.beta", Value: true},
	})

	want := map[string]any{
		"en-US": map[string]any{"translation": map[string]any{
			"welcome": map[string]any{"text": "Hi", "reprompt": "Still there?"},
			"facts":   []any{nil, "second"},
		}},
		"de-DE": map[string]any{"translation": map[string]any{
			"welcome": map[string]any{"text": "Hallo"},
			"flags":   map[string]any{"beta": true},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("views mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	model := &interaction.Model{
		Views: []interaction.View{{Locale: "en-US", Path: "welcome", Value: "Hi"}},
		Synonyms: []interaction.SynonymSet{
			{Spreadsheet: "coffee", Name: "Size", Values: []string{"small", "large"}},
			{Spreadsheet: "coffee", Name: "Milk", Values: nil},
			{Spreadsheet: "coffee", Name: "Size", Values: []string{"huge"}},
			{Spreadsheet: "tea", Name: "Kind", Values: []string{"green"}},
		},
		Downloads: []interaction.Download{{
			Name:   "facts",
			Locale: "en-US",
			Rows: sheet.Normalize(sheet.RawGrid{
				{"fact", "source"},
				{"Coffee is a seed", "wiki"},
				{},
				{"Espresso"},
			}),
		}},
	}
	out := artifact.NewCollector()

	// --- Act ---
	err := (&Platform{}).Generate(testContext(), &registry.Input{Interaction: model, Paths: testPaths}, out)

	// --- Assert ---
	require.NoError(t, err)
	arts := out.Artifacts()
	require.Len(t, arts, 4)

	assert.Equal(t, "app/views.json", arts[0].Path)

	assert.Equal(t, "synonyms/coffee.json", arts[1].Path)
	assert.Equal(t, map[string][]string{"Size": {"small", "large", "huge"}, "Milk": {}}, arts[1].Content)
	assert.Equal(t, "synonyms/tea.json", arts[2].Path)

	assert.Equal(t, "content/facts.json", arts[3].Path)
	encoded, err := arts[3].Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"fact":"Coffee is a seed","source":"wiki"},{"fact":"Espresso","source":null}]`, string(encoded))
}

func TestGenerate_NothingToDo(t *testing.T) {
	t.Parallel()

	out := artifact.NewCollector()
	err := (&Platform{}).Generate(testContext(), &registry.Input{Interaction: &interaction.Model{}, Paths: testPaths}, out)

	require.NoError(t, err)
	assert.Zero(t, out.Len())
}

func TestModule_RegistersPlatform(t *testing.T) {
	t.Parallel()

	r := registry.New()
	(&Module{}).Register(r)

	p, ok := r.Platform(Name)
	require.True(t, ok)
	_, owns := p.(registry.OutputOwner)
	assert.False(t, owns, "content must not clean shared directories")
}
