package dialogflow

import (
	"strings"

	"github.com/specialistvlad/voxgrid/internal/hashid"
	"github.com/specialistvlad/voxgrid/internal/interaction"
)

// ReservedPrefix is stripped from intent names; Dialogflow has no built-in
// namespace.
const ReservedPrefix = "AMAZON."

// Intent names with special handling, after the prefix is stripped.
const (
	FallbackIntentName = "FallbackIntent"
	LaunchIntentName   = "LaunchIntent"
)

// FallbackAction is the action of the fallback intent.
const FallbackAction = "input.unknown"

// WelcomeEvents are attached to the launch intent.
var WelcomeEvents = []string{"WELCOME", "GOOGLE_ASSISTANT_WELCOME"}

const defaultPriority = 500000

// Intent is the intents/<Name>.json document.
type Intent struct {
	Name                  string     `json:"name"`
	Auto                  bool       `json:"auto"`
	Contexts              []string   `json:"contexts"`
	Responses             []Response `json:"responses"`
	Priority              int        `json:"priority"`
	WebhookUsed           bool       `json:"webhookUsed"`
	WebhookForSlotFilling bool       `json:"webhookForSlotFilling"`
	FallbackIntent        bool       `json:"fallbackIntent"`
	Events                []Event    `json:"events"`
	ID                    string     `json:"id"`
}

// Response is the single response block of an intent.
type Response struct {
	ResetContexts            bool           `json:"resetContexts"`
	Action                   string         `json:"action"`
	AffectedContexts         []any          `json:"affectedContexts"`
	Parameters               []Parameter    `json:"parameters"`
	Messages                 []any          `json:"messages"`
	DefaultResponsePlatforms map[string]any `json:"defaultResponsePlatforms"`
	Speech                   []any          `json:"speech"`
}

// Parameter is a slot as Dialogflow declares it.
type Parameter struct {
	DataType string `json:"dataType"`
	Name     string `json:"name"`
	Value    string `json:"value"`
	IsList   bool   `json:"isList"`
}

// Event triggers an intent without user speech.
type Event struct {
	Name string `json:"name"`
}

// IntentName strips the reserved prefix.
func IntentName(name string) string {
	return strings.Replace(name, ReservedPrefix, "", 1)
}

// DataType maps a slot type onto a Dialogflow entity reference: system
// entities are kept, everything else is prefixed with '@'.
func DataType(slotType string) string {
	if strings.Contains(slotType, "@sys.") {
		return slotType
	}
	return "@" + slotType
}

// parameters converts the intent's slots.
func parameters(in interaction.Intent) []Parameter {
	out := make([]Parameter, 0, len(in.Slots))
	for _, s := range in.Slots {
		out = append(out, Parameter{
			DataType: DataType(s.Type),
			Name:     s.Name,
			Value:    "$" + s.Name,
			IsList:   false,
		})
	}
	return out
}

// buildIntent converts one interaction intent. The id is computed last,
// over every other field.
func buildIntent(in interaction.Intent) Intent {
	name := IntentName(in.Name)
	fallback := name == FallbackIntentName
	action := name
	if fallback {
		action = FallbackAction
	}

	eventNames := in.Events
	if name == LaunchIntentName {
		eventNames = WelcomeEvents
	}
	events := make([]Event, 0, len(eventNames))
	for _, e := range eventNames {
		events = append(events, Event{Name: e})
	}

	intent := Intent{
		Name:     name,
		Auto:     true,
		Contexts: []string{},
		Responses: []Response{{
			ResetContexts:            false,
			Action:                   action,
			AffectedContexts:         []any{},
			Parameters:               parameters(in),
			Messages:                 []any{},
			DefaultResponsePlatforms: map[string]any{},
			Speech:                   []any{},
		}},
		Priority:              defaultPriority,
		WebhookUsed:           true,
		WebhookForSlotFilling: false,
		FallbackIntent:        fallback,
		Events:                events,
	}
	intent.ID = hashid.Of(intent)
	return intent
}
