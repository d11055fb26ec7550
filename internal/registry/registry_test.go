package registry

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/specialistvlad/voxgrid/internal/artifact"
	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlatform struct{ name string }

func (s stubPlatform) Name() string { return s.name }

func (s stubPlatform) Generate(_ context.Context, _ *Input, out *artifact.Collector) error {
	out.Add(s.name+".json", s.name)
	return nil
}

func stubSink(context.Context, SinkConfig) (artifact.Sink, error) { return nil, nil }

type stubModule struct{}

func (stubModule) Register(r *Registry) {
	r.RegisterPlatform(stubPlatform{name: "dialogflow"})
	r.RegisterPlatform(stubPlatform{name: "content"})
	r.RegisterSink("local", stubSink)
}

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r := New()

	// --- Act ---
	stubModule{}.Register(r)

	// --- Assert ---
	p, ok := r.Platform("dialogflow")
	require.True(t, ok)
	assert.Equal(t, "dialogflow", p.Name())
	_, ok = r.Platform("alexa")
	assert.False(t, ok)
	_, ok = r.Sink("local")
	assert.True(t, ok)
	assert.Equal(t, []string{"content", "dialogflow"}, r.PlatformNames())
	assert.Equal(t, []string{"local"}, r.SinkNames())
}

func TestRegistry_DuplicatesPanic(t *testing.T) {
	t.Parallel()

	r := New()
	stubModule{}.Register(r)

	assert.PanicsWithValue(t, "platform with name 'dialogflow' already registered", func() {
		r.RegisterPlatform(stubPlatform{name: "dialogflow"})
	})
	assert.PanicsWithValue(t, "sink with name 'local' already registered", func() {
		r.RegisterSink("local", stubSink)
	})
}

func TestRegistry_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		platforms []string
		sink      string
		wantErrs  []string
	}{
		{name: "valid", platforms: []string{"dialogflow", "content"}, sink: "local"},
		{name: "duplicates tolerated", platforms: []string{"dialogflow", "dialogflow"}, sink: "local"},
		{
			name:      "unknown platform and sink",
			platforms: []string{"alexa"},
			sink:      "ftp",
			wantErrs: []string{
				"unknown platform 'alexa' (known: content, dialogflow)",
				"unknown sink 'ftp' (known: local)",
			},
		},
		{name: "no platform", sink: "local", wantErrs: []string{"no platform selected"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := New()
			stubModule{}.Register(r)

			err := r.Validate(testContext(), tc.platforms, tc.sink)

			if len(tc.wantErrs) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "registry validation failed")
			for _, want := range tc.wantErrs {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
