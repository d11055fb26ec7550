package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_ReturnsStoredLogger(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithLogger(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContext_PanicsWithoutLogger(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { FromContext(context.Background()) })
}

func TestWith_AddsAttributes(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	// --- Act ---
	ctx, logger := With(ctx, "platform", "dialogflow")
	FromContext(ctx).Info("generated")

	// --- Assert ---
	require.NotNil(t, logger)
	assert.Contains(t, buf.String(), "platform=dialogflow")
	assert.Contains(t, buf.String(), "msg=generated")
}
