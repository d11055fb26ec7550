package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/voxgrid/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_InvalidBuildFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A build file with a syntax error fails while the app is constructed.
	invalidHCL := `
		platforms = ["dialogflow"
		// Missing closing bracket here
	`
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "voxgrid.hcl")
	err := os.WriteFile(filePath, []byte(invalidHCL), 0600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, []string{filePath})

	// --- Assert ---
	require.Error(t, runErr)
	var exitErr *cli.ExitError
	require.ErrorAs(t, runErr, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "failed to parse")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	err := run(context.Background(), out, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_NoSheetsFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "voxgrid.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(`spreadsheets = ["missing.xlsx"]`), 0600))

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, []string{"--dry-run", filePath})

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "there are no spreadsheets to use")
}
