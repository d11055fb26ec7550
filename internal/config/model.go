package config

import "context"

// Loader is the interface for a format-specific build-file loader.
type Loader interface {
	// Load reads the build file at path and returns the model with defaults
	// applied. An empty path yields the defaults alone.
	Load(ctx context.Context, path string) (*Model, error)
}

// Default directory names, relative to the root path.
const (
	DefaultSpeechDir   = "speech-assets"
	DefaultSynonymsDir = "synonyms"
	DefaultViewsDir    = "app"
	DefaultContentDir  = "content"
)

// DefaultPlatform is built when the build file names none.
const DefaultPlatform = "dialogflow"

// DefaultSink receives artifacts when the build file declares no sink.
const DefaultSink = "local"

// Model is the unified representation of one build.
type Model struct {
	RootPath     string
	Spreadsheets []string
	Platforms    []string
	// Credentials is the service-account JSON for the remote sheets API.
	Credentials []byte
	Paths       Paths
	Remote      Remote
	// Classify is prepended to the built-in classification table.
	Classify []Classification
	Sink     Sink
}

// Paths holds output directories relative to RootPath.
type Paths struct {
	Speech   string
	Synonyms string
	Views    string
	Content  string
}

// Remote tunes access to the remote sheets API.
type Remote struct {
	// RequestsPerSecond caps request issue. Zero means unlimited.
	RequestsPerSecond float64
	Burst             int
}

// Classification maps a tab-title marker onto a sheet type name.
type Classification struct {
	Marker string
	Type   string
}

// Sink selects where artifacts go. Settings are sink-specific.
type Sink struct {
	Type     string
	Settings map[string]string
}

// New returns a Model holding only defaults.
func New() *Model {
	return &Model{
		RootPath:  ".",
		Platforms: []string{DefaultPlatform},
		Paths: Paths{
			Speech:   DefaultSpeechDir,
			Synonyms: DefaultSynonymsDir,
			Views:    DefaultViewsDir,
			Content:  DefaultContentDir,
		},
		Sink: Sink{Type: DefaultSink, Settings: map[string]string{}},
	}
}
