// Package actionsongoogle generates the Actions on Google translation files:
// one XLIFF 1.2 document per invocation, built from the merged publishing
// manifest of that invocation's locale and environment.
package actionsongoogle

import (
	"context"
	"fmt"
	"path"

	"github.com/specialistvlad/voxgrid/internal/artifact"
	"github.com/specialistvlad/voxgrid/internal/config"
	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/specialistvlad/voxgrid/internal/interaction"
	"github.com/specialistvlad/voxgrid/internal/registry"
	"github.com/specialistvlad/voxgrid/internal/xliff"
)

// Name is the platform name used in build files and output paths.
const Name = "actionsOnGoogle"

// Extension is the file extension of generated translation files.
const Extension = ".xlf"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the platform with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlatform(&Platform{})
}

// Platform is the Actions on Google generator.
type Platform struct{}

// Name implements registry.Platform.
func (p *Platform) Name() string { return Name }

// OutputDir implements registry.OutputOwner.
func (p *Platform) OutputDir(paths config.Paths) string {
	return path.Join(paths.Speech, Name)
}

// Generate implements registry.Platform.
func (p *Platform) Generate(ctx context.Context, in *registry.Input, out *artifact.Collector) error {
	logger := ctxlog.FromContext(ctx)

	for _, inv := range in.Interaction.Invocations {
		if err := ctx.Err(); err != nil {
			return err
		}
		m := in.Manifests(inv.Environment)[inv.Locale]
		doc, err := xliff.Translate(m, inv.Locale)
		if err != nil {
			return fmt.Errorf("failed to build translations for %s/%s: %w", inv.Environment, inv.Locale, err)
		}
		out.Add(FilePath(in.Paths, inv), doc)
		logger.Debug("Translation file generated.", "locale", inv.Locale, "environment", inv.Environment, "keys", len(m))
	}
	return nil
}

// FilePath is where the translation file of inv is written.
func FilePath(paths config.Paths, inv interaction.Invocation) string {
	return path.Join(paths.Speech, Name, interaction.Kebab(inv.Environment), inv.Locale+Extension)
}
