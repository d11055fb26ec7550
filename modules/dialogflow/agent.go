package dialogflow

import (
	"github.com/specialistvlad/voxgrid/internal/interaction"
	"github.com/specialistvlad/voxgrid/internal/manifest"
)

// UnnamedAgent is the description used when no invocation name is set.
const UnnamedAgent = "Skill with no name"

// Package is the package.json document.
type Package struct {
	Version string `json:"version"`
}

// PackageVersion is the agent export format version.
const PackageVersion = "1.0.0"

// agentInput is what one agent.json is computed from.
type agentInput struct {
	name               string
	supportedLanguages []string
	manifest           manifest.Manifest
	source             []interaction.Intent
	built              map[string]Intent
}

// buildAgent deep-merges the default agent, the environment manifest and
// the computed fields, in that order of precedence from lowest.
func buildAgent(defaults map[string]any, in agentInput) map[string]any {
	name := in.name
	if name == "" {
		name = UnnamedAgent
	}

	startIntents := []any{}
	endIntentIDs := []any{}
	for _, src := range in.source {
		built, ok := in.built[IntentName(src.Name)]
		if !ok {
			continue
		}
		if src.StartIntent {
			startIntents = append(startIntents, map[string]any{
				"intentId":       built.ID,
				"signInRequired": src.SignInRequired,
			})
		}
		if src.EndIntent {
			endIntentIDs = append(endIntentIDs, built.ID)
		}
	}

	languages := make([]any, 0, len(in.supportedLanguages))
	for _, l := range in.supportedLanguages {
		languages = append(languages, l)
	}

	computed := map[string]any{
		"description":        name,
		"supportedLanguages": languages,
		"googleAssistant": map[string]any{
			"project":      interaction.Kebab(name),
			"startIntents": startIntents,
			"endIntentIds": endIntentIDs,
		},
	}

	merged := manifest.Merge(defaults, map[string]any(in.manifest))
	out, _ := manifest.Merge(merged, computed).(map[string]any)
	return out
}
