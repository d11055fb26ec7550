package local

import (
	"context"
	"testing"

	"github.com/specialistvlad/voxgrid/internal/artifact"
	"github.com/specialistvlad/voxgrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSink(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		cfg      registry.SinkConfig
		wantRoot string
	}{
		{
			name:     "build root",
			cfg:      registry.SinkConfig{Root: "/project", Clean: []string{"speech-assets/dialogflow"}},
			wantRoot: "/project",
		},
		{
			name:     "root setting wins",
			cfg:      registry.SinkConfig{Root: "/project", Settings: map[string]string{"root": "/out"}},
			wantRoot: "/out",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sink, err := NewSink(context.Background(), tc.cfg)
			require.NoError(t, err)
			fs, ok := sink.(*artifact.FileSink)
			require.True(t, ok)
			assert.Equal(t, tc.wantRoot, fs.Root)
			assert.Equal(t, tc.cfg.Clean, fs.Clean)
		})
	}
}
