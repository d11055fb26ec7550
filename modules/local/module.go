// Package local provides the default sink: artifacts are written to the
// file system under the build's root path.
package local

import (
	"context"

	"github.com/specialistvlad/voxgrid/internal/artifact"
	"github.com/specialistvlad/voxgrid/internal/registry"
)

// Name is the sink name used in build files.
const Name = "local"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sink with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSink(Name, NewSink)
}

// NewSink returns a file sink rooted at cfg.Root. A "root" setting in the
// sink block overrides it.
func NewSink(_ context.Context, cfg registry.SinkConfig) (artifact.Sink, error) {
	root := cfg.Root
	if r := cfg.Settings["root"]; r != "" {
		root = r
	}
	return &artifact.FileSink{Root: root, Clean: cfg.Clean}, nil
}
