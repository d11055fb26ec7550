// Package dialogflow generates a Dialogflow agent export: one intent
// document and one usersays document per intent, plus agent.json and
// package.json per environment.
package dialogflow

import (
	"context"
	"maps"
	"path"
	"strings"

	"github.com/specialistvlad/voxgrid/internal/artifact"
	"github.com/specialistvlad/voxgrid/internal/config"
	"github.com/specialistvlad/voxgrid/internal/ctxlog"
	"github.com/specialistvlad/voxgrid/internal/interaction"
	"github.com/specialistvlad/voxgrid/internal/registry"
)

// Name is the platform name used in build files and output paths.
const Name = "dialogflow"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the platform with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPlatform(New(EmbeddedDefaults()))
}

// Platform is the Dialogflow generator.
type Platform struct {
	defaults *Defaults
}

// New returns a generator starting from defaults.
func New(defaults *Defaults) *Platform {
	return &Platform{defaults: defaults}
}

// Name implements registry.Platform.
func (p *Platform) Name() string { return Name }

// OutputDir implements registry.OutputOwner.
func (p *Platform) OutputDir(paths config.Paths) string {
	return path.Join(paths.Speech, Name)
}

type invocationKey struct {
	locale      string
	environment string
}

// Generate implements registry.Platform. Intents are generated per
// invocation; agent.json and package.json once per environment, from the
// environment's first invocation. Intent files carry no locale, so the last
// invocation of an environment owns them and agent.json references the ids
// of exactly those files.
func (p *Platform) Generate(ctx context.Context, in *registry.Input, out *artifact.Collector) error {
	logger := ctxlog.FromContext(ctx)
	model := in.Interaction

	done := make(map[invocationKey]bool)
	// environment -> intent name -> intent currently at its path
	written := make(map[string]map[string]Intent)
	for _, inv := range model.Invocations {
		if err := ctx.Err(); err != nil {
			return err
		}
		key := invocationKey{inv.Locale, inv.Environment}
		if done[key] {
			continue
		}
		done[key] = true
		intents := model.IntentsFor(inv.Locale, inv.Environment, Name)
		if written[inv.Environment] == nil {
			written[inv.Environment] = make(map[string]Intent)
		}
		maps.Copy(written[inv.Environment], p.generateIntents(in.Paths, inv, intents, out))
		logger.Debug("Dialogflow intents generated.", "locale", inv.Locale, "environment", inv.Environment, "intents", len(intents))
	}

	locales := model.Locales()
	for _, env := range model.Environments() {
		inv, _ := model.PrimaryInvocation(env)
		dir := path.Join(in.Paths.Speech, Name, env)

		out.Add(path.Join(dir, "package.json"), Package{Version: PackageVersion})
		out.Add(path.Join(dir, "agent.json"), buildAgent(p.defaults.Agent, agentInput{
			name:               inv.Name,
			supportedLanguages: locales,
			manifest:           in.Manifests(env)[inv.Locale],
			source:             model.IntentsFor(inv.Locale, env, Name),
			built:              written[env],
		}))
	}
	return nil
}

// generateIntents adds the intent and usersays artifacts of one invocation
// and returns the built intents by name.
func (p *Platform) generateIntents(paths config.Paths, inv interaction.Invocation, intents []interaction.Intent, out *artifact.Collector) map[string]Intent {
	dir := path.Join(paths.Speech, Name, inv.Environment, "intents")
	lang := Language(inv.Locale)

	byName := make(map[string]Intent, len(intents))
	for _, src := range intents {
		intent := buildIntent(src)
		byName[intent.Name] = intent
		out.Add(path.Join(dir, intent.Name+".json"), intent)

		texts := samples(src.Samples, p.defaults.BuiltInIntents[intent.Name])
		if len(texts) == 0 {
			continue
		}
		params := intent.Responses[0].Parameters
		out.Add(path.Join(dir, intent.Name+"_usersays_"+lang+".json"), buildUsersays(texts, params))
	}
	return byName
}

// Language returns the language subtag of a locale ("en-US" is "en").
func Language(locale string) string {
	lang, _, _ := strings.Cut(locale, "-")
	return lang
}
