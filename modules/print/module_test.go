package print

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/specialistvlad/voxgrid/internal/artifact"
	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/specialistvlad/voxgrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSink_PrintsEveryArtifact(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var out bytes.Buffer
	r := registry.New()
	(&Module{}).Register(r)
	factory, ok := r.Sink(Name)
	require.True(t, ok)
	sink, err := factory(testContext(), registry.SinkConfig{Out: &out, Settings: map[string]string{}})
	require.NoError(t, err)

	// --- Act ---
	err = sink.Write(testContext(), []artifact.Artifact{
		{Path: "speech-assets/dialogflow/staging/package.json", Content: map[string]string{"version": "1.0.0"}},
		{Path: "speech-assets/actionsOnGoogle/staging/en-US.xlf", Content: []byte("<xliff/>")},
	})

	// --- Assert ---
	require.NoError(t, err)
	want := "==> speech-assets/dialogflow/staging/package.json <==\n{\n  \"version\": \"1.0.0\"\n}\n\n" +
		"==> speech-assets/actionsOnGoogle/staging/en-US.xlf <==\n<xliff/>\n\n"
	assert.Equal(t, want, out.String())
}

func TestSink_Summary(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	sink := &Sink{Out: &out, Summary: true}

	err := sink.Write(testContext(), []artifact.Artifact{{Path: "a.xlf", Content: []byte("12345")}})

	require.NoError(t, err)
	assert.Equal(t, "a.xlf (5 bytes)\n", out.String())
}
