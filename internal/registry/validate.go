package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/voxgrid/internal/ctxlog"
)

// Validate checks that every requested platform and the requested sink are
// registered. All problems are reported together.
func (r *Registry) Validate(ctx context.Context, platforms []string, sink string) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]struct{}, len(platforms))
	for _, name := range platforms {
		if _, dup := seen[name]; dup {
			logger.Warn("Platform listed more than once, building it once.", "platform", name)
			continue
		}
		seen[name] = struct{}{}
		if _, ok := r.platforms[name]; !ok {
			errs = append(errs, fmt.Sprintf("unknown platform '%s' (known: %s)", name, strings.Join(r.PlatformNames(), ", ")))
		}
	}
	if len(platforms) == 0 {
		errs = append(errs, "no platform selected")
	}

	if _, ok := r.sinks[sink]; !ok {
		errs = append(errs, fmt.Sprintf("unknown sink '%s' (known: %s)", sink, strings.Join(r.SinkNames(), ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
