package registry

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/specialistvlad/voxgrid/internal/artifact"
	"github.com/specialistvlad/voxgrid/internal/config"
	"github.com/specialistvlad/voxgrid/internal/interaction"
	"github.com/specialistvlad/voxgrid/internal/manifest"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Input is everything a platform generator reads.
type Input struct {
	Interaction *interaction.Model
	// Manifests returns the merged publishing manifests of an environment.
	Manifests func(environment string) manifest.Set
	Paths     config.Paths
}

// Platform generates the artifacts of one target platform. Generate only
// appends to out; it never writes.
type Platform interface {
	Name() string
	Generate(ctx context.Context, in *Input, out *artifact.Collector) error
}

// OutputOwner is implemented by platforms that own a whole output directory.
// Sinks that write to disk remove it before writing.
type OutputOwner interface {
	OutputDir(paths config.Paths) string
}

// SinkConfig is what a sink factory is built from.
type SinkConfig struct {
	// Root is the build's root path.
	Root string
	// Settings are the attributes of the build file's sink block.
	Settings map[string]string
	// Clean lists directories, relative to Root, owned by the selected
	// platforms.
	Clean []string
	// Out is the application's output stream.
	Out io.Writer
}

// SinkFactory builds a sink.
type SinkFactory func(ctx context.Context, cfg SinkConfig) (artifact.Sink, error)

// Registry holds the platforms and sinks of a single application instance.
type Registry struct {
	platforms map[string]Platform
	sinks     map[string]SinkFactory
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		platforms: make(map[string]Platform),
		sinks:     make(map[string]SinkFactory),
	}
}

// RegisterPlatform registers a platform under its Name.
func (r *Registry) RegisterPlatform(p Platform) {
	name := p.Name()
	if _, exists := r.platforms[name]; exists {
		panic(fmt.Sprintf("platform with name '%s' already registered", name))
	}
	slog.Debug("Registering platform.", "name", name)
	r.platforms[name] = p
}

// RegisterSink registers a sink factory.
func (r *Registry) RegisterSink(name string, f SinkFactory) {
	if _, exists := r.sinks[name]; exists {
		panic(fmt.Sprintf("sink with name '%s' already registered", name))
	}
	slog.Debug("Registering sink.", "name", name)
	r.sinks[name] = f
}

// Platform looks up a registered platform.
func (r *Registry) Platform(name string) (Platform, bool) {
	p, ok := r.platforms[name]
	return p, ok
}

// Sink looks up a registered sink factory.
func (r *Registry) Sink(name string) (SinkFactory, bool) {
	f, ok := r.sinks[name]
	return f, ok
}

// PlatformNames returns the registered platform names, sorted.
func (r *Registry) PlatformNames() []string {
	return sortedKeys(r.platforms)
}

// SinkNames returns the registered sink names, sorted.
func (r *Registry) SinkNames() []string {
	return sortedKeys(r.sinks)
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
