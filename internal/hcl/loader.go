package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/voxgrid/internal/config"
	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/specialistvlad/voxgrid/internal/fsutil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL build-file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses path (a .hcl file, or a directory whose .hcl files are merged
// into one body) and translates it into a config.Model over the defaults.
// Relative root_path and file() arguments resolve against the directory of
// the build file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.New()
	if path == "" {
		logger.Debug("No build file given, using defaults.")
		return model, nil
	}

	files, baseDir, err := l.findBuildFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered build files.", "count", len(files), "base_dir", baseDir)

	parser := hclparse.NewParser()
	var parsed []*hcl.File
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		parsed = append(parsed, hclFile)
	}

	evalCtx := newEvalContext(baseDir)
	var root fileRoot
	if diags := gohcl.DecodeBody(hcl.MergeFiles(parsed), evalCtx, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode build file %s: %w", path, diags)
	}

	model.RootPath = baseDir
	if err := l.translate(&root, model, baseDir, evalCtx); err != nil {
		return nil, err
	}

	logger.Debug("Build file loaded.",
		"root_path", model.RootPath,
		"spreadsheets", len(model.Spreadsheets),
		"platforms", model.Platforms,
		"sink", model.Sink.Type,
	)
	return model, nil
}

// translate copies every attribute the file sets over the defaults in m.
func (l *Loader) translate(root *fileRoot, m *config.Model, baseDir string, evalCtx *hcl.EvalContext) error {
	if root.RootPath != nil {
		m.RootPath = fsutil.Resolve(baseDir, *root.RootPath)
	}
	if root.Spreadsheets != nil {
		m.Spreadsheets = root.Spreadsheets
	}
	if len(root.Platforms) > 0 {
		m.Platforms = root.Platforms
	}
	if root.Credentials != nil && *root.Credentials != "" {
		m.Credentials = []byte(*root.Credentials)
	}

	if p := root.Paths; p != nil {
		setIf(&m.Paths.Speech, p.Speech)
		setIf(&m.Paths.Synonyms, p.Synonyms)
		setIf(&m.Paths.Views, p.Views)
		setIf(&m.Paths.Content, p.Content)
	}

	if r := root.Remote; r != nil {
		if r.RequestsPerSecond != nil {
			m.Remote.RequestsPerSecond = *r.RequestsPerSecond
		}
		if r.Burst != nil {
			m.Remote.Burst = *r.Burst
		}
	}

	for _, c := range root.Classify {
		m.Classify = append(m.Classify, config.Classification{Marker: c.Marker, Type: c.Type})
	}

	switch len(root.Sinks) {
	case 0:
	case 1:
		sink, err := l.translateSink(root.Sinks[0], evalCtx)
		if err != nil {
			return err
		}
		m.Sink = sink
	default:
		return fmt.Errorf("at most one sink block is allowed, found %d", len(root.Sinks))
	}
	return nil
}

// translateSink evaluates every attribute of a sink block as a string.
func (l *Loader) translateSink(b *sinkBlock, evalCtx *hcl.EvalContext) (config.Sink, error) {
	sink := config.Sink{Type: b.Type, Settings: map[string]string{}}
	if b.Body == nil {
		return sink, nil
	}
	attrs, diags := b.Body.JustAttributes()
	if diags.HasErrors() {
		return sink, fmt.Errorf("invalid sink %q: %w", b.Type, diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return sink, fmt.Errorf("invalid sink %q attribute %q: %w", b.Type, name, diags)
		}
		if val.IsNull() {
			continue
		}
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return sink, fmt.Errorf("sink %q attribute %q must be a string: %w", b.Type, name, err)
		}
		sink.Settings[name] = str.AsString()
	}
	return sink, nil
}

// findBuildFiles returns the .hcl files at path and the directory relative
// references resolve against.
func (l *Loader) findBuildFiles(path string) ([]string, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("error accessing build file %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, filepath.Dir(path), nil
	}
	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, "", fmt.Errorf("failed to walk %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, "", fmt.Errorf("no .hcl files found in %s", path)
	}
	return files, path, nil
}

func setIf(dst *string, v *string) {
	if v != nil && *v != "" {
		*dst = *v
	}
}
