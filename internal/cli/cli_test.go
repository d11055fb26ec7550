package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/voxgrid/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		want     *app.Config
		wantExit bool
		wantCode int
		wantMsg  string
	}{
		{
			name: "positional build path",
			args: []string{"voxgrid.hcl"},
			want: &app.Config{BuildPath: "voxgrid.hcl", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "every flag",
			args: []string{"-c", "build/", "--root", "project", "--credentials", "sa.json", "--dry-run", "--log-format", "JSON", "--log-level", "debug"},
			want: &app.Config{
				BuildPath:       "build/",
				RootPath:        "project",
				CredentialsPath: "sa.json",
				DryRun:          true,
				LogFormat:       "json",
				LogLevel:        "debug",
			},
		},
		{
			name: "config flag wins over positional",
			args: []string{"--config", "a.hcl", "b.hcl"},
			want: &app.Config{BuildPath: "a.hcl", LogFormat: "text", LogLevel: "info"},
		},
		{name: "help", args: []string{"-h"}, wantExit: true},
		{name: "no build path", args: []string{}, wantExit: true},
		{name: "unknown flag", args: []string{"--workers", "3"}, wantCode: 2, wantMsg: "unknown flag: --workers"},
		{name: "bad log format", args: []string{"--log-format", "xml", "x.hcl"}, wantCode: 2, wantMsg: "invalid log format 'xml'"},
		{name: "bad log level", args: []string{"--log-level", "trace", "x.hcl"}, wantCode: 2, wantMsg: "invalid log level 'trace'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			cfg, shouldExit, err := Parse(tc.args, out)

			// --- Assert ---
			if tc.wantCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.wantCode, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.wantMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, shouldExit)
			if tc.wantExit {
				assert.Contains(t, out.String(), "Usage:")
				return
			}
			assert.Equal(t, tc.want, cfg)
		})
	}
}
