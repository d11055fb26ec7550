package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/specialistvlad/voxgrid/internal/config"
	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/specialistvlad/voxgrid/internal/ingest"
	"github.com/specialistvlad/voxgrid/internal/registry"
	"github.com/specialistvlad/voxgrid/internal/sheet"
	"github.com/specialistvlad/voxgrid/modules/print"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	registry   *registry.Registry
	build      *config.Model
	classifier *sheet.Classifier
	platforms  []string
	sink       string

	// newClient replaces the Google Sheets client when set.
	newClient ingest.ClientFactory
}

// NewApp is the constructor for the main application. It loads the build
// file, registers modules and validates the result. Module registration
// conflicts are programmer errors and panic; everything else is returned.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	build, err := loader.Load(ctx, appConfig.BuildPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := applyOverrides(build, appConfig); err != nil {
		return nil, err
	}
	logger.Debug("Build configuration loaded.", "root_path", build.RootPath, "spreadsheets", len(build.Spreadsheets))

	classifier, err := newClassifier(build.Classify)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	sink := build.Sink.Type
	if appConfig.DryRun {
		sink = print.Name
	}
	platforms := selectPlatforms(build.Platforms, reg)
	if err := reg.Validate(ctx, build.Platforms, sink); err != nil {
		return nil, err
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:       outW,
		logger:     logger,
		registry:   reg,
		build:      build,
		classifier: classifier,
		platforms:  platforms,
		sink:       sink,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// applyOverrides folds command-line settings into the loaded build.
func applyOverrides(build *config.Model, appConfig *Config) error {
	if appConfig.RootPath != "" {
		root, err := filepath.Abs(appConfig.RootPath)
		if err != nil {
			return fmt.Errorf("failed to resolve root path: %w", err)
		}
		build.RootPath = root
	}
	if appConfig.CredentialsPath != "" {
		creds, err := os.ReadFile(appConfig.CredentialsPath)
		if err != nil {
			return fmt.Errorf("failed to read credentials: %w", err)
		}
		build.Credentials = creds
	}
	return nil
}

// newClassifier puts the build's markers in front of the built-in table.
func newClassifier(extra []config.Classification) (*sheet.Classifier, error) {
	markers := make([]sheet.Marker, 0, len(extra))
	for _, c := range extra {
		t, ok := sheet.ParseType(c.Type)
		if !ok {
			return nil, fmt.Errorf("unknown sheet type '%s' for marker '%s'", c.Type, c.Marker)
		}
		markers = append(markers, sheet.Marker{Type: t, Marker: c.Marker})
	}
	return sheet.DefaultClassifier().WithPrefix(markers...), nil
}

// selectPlatforms de-duplicates the requested platforms, keeping order, and
// appends the registered every-build platforms.
func selectPlatforms(requested []string, reg *registry.Registry) []string {
	var out []string
	for _, name := range requested {
		if !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	for _, name := range everyBuild {
		if _, ok := reg.Platform(name); ok && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	return out
}
