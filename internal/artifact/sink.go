package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/voxgrid/internal/ctxlog"
)

// Sink persists a finished set of artifacts. Paths are relative, slash
// separated, and rooted at the build's root path.
type Sink interface {
	Write(ctx context.Context, artifacts []Artifact) error
}

// FileSink writes artifacts under Root. Before writing, it removes every
// directory listed in Clean so that artifacts of intents that no longer
// exist do not linger.
type FileSink struct {
	Root  string
	Clean []string
}

// Write implements Sink.
func (s *FileSink) Write(ctx context.Context, artifacts []Artifact) error {
	logger := ctxlog.FromContext(ctx)

	for _, dir := range s.Clean {
		target := filepath.Join(s.Root, filepath.FromSlash(dir))
		logger.Debug("Removing previous output.", "dir", target)
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("failed to clean %s: %w", target, err)
		}
	}

	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := a.Encode()
		if err != nil {
			return err
		}
		target := filepath.Join(s.Root, filepath.FromSlash(a.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", a.Path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", a.Path, err)
		}
		logger.Debug("Artifact written.", "path", target, "bytes", len(data))
	}
	return nil
}
