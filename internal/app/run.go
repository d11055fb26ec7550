package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/voxgrid/internal/artifact"
	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/specialistvlad/voxgrid/internal/ingest"
	"github.com/specialistvlad/voxgrid/internal/interaction"
	"github.com/specialistvlad/voxgrid/internal/manifest"
	"github.com/specialistvlad/voxgrid/internal/registry"
)

// Run executes one build: ingest, extract, generate every selected platform
// and hand the artifacts to the sink. Nothing is written unless every
// platform succeeds.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	opts := []ingest.Option{
		ingest.WithClassifier(a.classifier),
		ingest.WithRateLimit(a.build.Remote.RequestsPerSecond, a.build.Remote.Burst),
	}
	if a.newClient != nil {
		opts = append(opts, ingest.WithClientFactory(a.newClient))
	}

	a.logger.Info("🚀 Ingesting spreadsheets...", "count", len(a.build.Spreadsheets))
	sheets, err := ingest.New(opts...).Ingest(ctx, ingest.Source{
		Spreadsheets: a.build.Spreadsheets,
		RootPath:     a.build.RootPath,
		Credentials:  a.build.Credentials,
	})
	if err != nil {
		return err
	}

	model := interaction.Extract(sheets)
	a.logger.Info("Sheets ingested.",
		"sheets", len(sheets),
		"intents", len(model.Intents),
		"invocations", len(model.Invocations),
	)

	manifests := manifest.NewBuilder(sheets)
	in := &registry.Input{
		Interaction: model,
		Manifests:   manifests.ForEnvironment,
		Paths:       a.build.Paths,
	}

	collector := artifact.NewCollector()
	var clean []string
	for _, name := range a.platforms {
		p, _ := a.registry.Platform(name)
		pctx, logger := ctxlog.With(ctx, "platform", name)
		logger.Debug("Generating platform.")
		if err := p.Generate(pctx, in, collector); err != nil {
			return fmt.Errorf("platform '%s' failed: %w", name, err)
		}
		if owner, ok := p.(registry.OutputOwner); ok {
			clean = append(clean, owner.OutputDir(a.build.Paths))
		}
	}
	a.logger.Info("Artifacts generated.", "platforms", a.platforms, "count", collector.Len())

	factory, _ := a.registry.Sink(a.sink)
	sink, err := factory(ctx, registry.SinkConfig{
		Root:     a.build.RootPath,
		Settings: a.build.Sink.Settings,
		Clean:    clean,
		Out:      a.outW,
	})
	if err != nil {
		return fmt.Errorf("failed to create sink '%s': %w", a.sink, err)
	}
	if err := sink.Write(ctx, collector.Artifacts()); err != nil {
		return fmt.Errorf("sink '%s' failed: %w", a.sink, err)
	}

	a.logger.Info("🏁 Build finished.", "sink", a.sink, "artifacts", collector.Len())
	return nil
}
