package dialogflow

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults are the static documents generation starts from.
type Defaults struct {
	// Agent is the base agent.json document.
	Agent map[string]any `yaml:"agent"`
	// BuiltInIntents maps an intent name, without the reserved prefix, to
	// samples appended to the authored ones.
	BuiltInIntents map[string][]string `yaml:"builtInIntents"`
}

// LoadDefaults parses a defaults document.
func LoadDefaults(data []byte) (*Defaults, error) {
	var d Defaults
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse dialogflow defaults: %w", err)
	}
	if d.Agent == nil {
		d.Agent = map[string]any{}
	}
	return &d, nil
}

// EmbeddedDefaults returns the defaults compiled into the binary.
func EmbeddedDefaults() *Defaults {
	d, err := LoadDefaults(defaultsYAML)
	if err != nil {
		panic(err)
	}
	return d
}
