// Package print provides the dry-run sink: artifacts are printed to the
// application's output instead of being written.
package print

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/voxgrid/internal/artifact"
	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/specialistvlad/voxgrid/internal/registry"
)

// Name is the sink name used in build files and selected by --dry-run.
const Name = "print"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the sink with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSink(Name, func(_ context.Context, cfg registry.SinkConfig) (artifact.Sink, error) {
		return &Sink{Out: cfg.Out, Summary: cfg.Settings["mode"] == "summary"}, nil
	})
}

// Sink prints artifacts. With Summary set only paths and sizes are printed.
type Sink struct {
	Out     io.Writer
	Summary bool
}

// Write implements artifact.Sink.
func (s *Sink) Write(ctx context.Context, artifacts []artifact.Artifact) error {
	ctxlog.FromContext(ctx).Info("Printing artifacts", "count", len(artifacts))

	for _, a := range artifacts {
		data, err := a.Encode()
		if err != nil {
			return err
		}
		if s.Summary {
			fmt.Fprintf(s.Out, "%s (%d bytes)\n", a.Path, len(data))
			continue
		}
		fmt.Fprintf(s.Out, "==> %s <==\n%s\n\n", a.Path, data)
	}
	return nil
}
