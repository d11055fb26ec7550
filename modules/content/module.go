// Package content generates the non-speech artifacts of a build: the
// localized views file, synonym lists, and verbatim downloads. It runs once
// per build, not per invocation.
package content

import (
	"context"
	"path"

	"github.com/specialistvlad/voxgrid/internal/artifact"
	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/specialistvlad/voxgrid/internal/interaction"
	"github.com/specialistvlad/voxgrid/internal/manifest"
	"github.com/specialistvlad/voxgrid/internal/registry"
	"github.com/specialistvlad/voxgrid/internal/sheet"
)

// Name is the platform name used in build files.
const Name = "content"

// ViewsFile is the file name of the views artifact.
const ViewsFile = "views.json"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the platform with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlatform(&Platform{})
}

// Platform is the content generator.
type Platform struct{}

// Name implements registry.Platform.
func (p *Platform) Name() string { return Name }

// Generate implements registry.Platform.
func (p *Platform) Generate(ctx context.Context, in *registry.Input, out *artifact.Collector) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logger := ctxlog.FromContext(ctx)
	model := in.Interaction

	if len(model.Views) > 0 {
		out.Add(path.Join(in.Paths.Views, ViewsFile), Views(model.Views))
	}

	for _, book := range synonymBooks(model.Synonyms) {
		out.Add(path.Join(in.Paths.Synonyms, book.name+".json"), book.sets)
	}

	for _, d := range model.Downloads {
		out.Add(path.Join(in.Paths.Content, d.Name+".json"), rows(d.Rows))
	}

	logger.Debug("Content generated.", "views", len(model.Views), "synonym_sets", len(model.Synonyms), "downloads", len(model.Downloads))
	return nil
}

// Views nests every view under its locale's translation tree:
// {"en-US": {"translation": {"welcome": {"text": "Hi"}}}}.
func Views(views []interaction.View) map[string]any {
	out := make(map[string]any)
	for _, v := range views {
		locale, ok := out[v.Locale].(map[string]any)
		if !ok {
			locale = map[string]any{"translation": map[string]any{}}
			out[v.Locale] = locale
		}
		manifest.SetPath(locale["translation"].(map[string]any), v.Path, v.Value)
	}
	return out
}

type synonymBook struct {
	name string
	sets map[string][]string
}

// synonymBooks groups synonym sets by spreadsheet, in first-seen order.
// Sets with the same name in one spreadsheet are concatenated.
func synonymBooks(sets []interaction.SynonymSet) []synonymBook {
	var out []synonymBook
	index := make(map[string]int)
	for _, s := range sets {
		i, ok := index[s.Spreadsheet]
		if !ok {
			i = len(out)
			index[s.Spreadsheet] = i
			out = append(out, synonymBook{name: s.Spreadsheet, sets: map[string][]string{}})
		}
		values := out[i].sets[s.Name]
		if values == nil {
			values = []string{}
		}
		out[i].sets[s.Name] = append(values, s.Values...)
	}
	return out
}

// rows drops empty rows.
func rows(in []sheet.Row) []sheet.Row {
	out := make([]sheet.Row, 0, len(in))
	for _, r := range in {
		if !r.IsEmpty() {
			out = append(out, r)
		}
	}
	return out
}
