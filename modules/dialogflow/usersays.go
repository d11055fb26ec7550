package dialogflow

import (
	"regexp"
	"slices"

	"github.com/specialistvlad/voxgrid/internal/hashid"
)

// Sample is one element of a <Name>_usersays_<lang>.json document.
type Sample struct {
	Data        []Token `json:"data"`
	IsATemplate bool    `json:"isATemplate"`
	Count       int     `json:"count"`
	Updated     int     `json:"updated"`
}

// Token is one run of a sample: literal text or a slot reference.
type Token struct {
	Text        string `json:"text"`
	Alias       string `json:"alias,omitempty"`
	Meta        string `json:"meta,omitempty"`
	UserDefined bool   `json:"userDefined"`
	ID          string `json:"id"`
}

var slotMarker = regexp.MustCompile(`\{([^}]+)\}`)

// samples returns authored samples followed by built-in ones, first
// occurrence kept.
func samples(authored, builtIn []string) []string {
	var out []string
	for _, s := range slices.Concat(authored, builtIn) {
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Tokenize splits sample on {slot} markers. A marker whose inner name is a
// declared parameter becomes a slot token; everything else non-empty is
// literal text.
func Tokenize(sample string, params []Parameter) []Token {
	var out []Token
	literal := func(text string) {
		if text == "" {
			return
		}
		t := Token{Text: text, UserDefined: false}
		t.ID = hashid.Of(t)
		out = append(out, t)
	}

	last := 0
	for _, m := range slotMarker.FindAllStringSubmatchIndex(sample, -1) {
		literal(sample[last:m[0]])
		last = m[1]

		inner := sample[m[2]:m[3]]
		i := slices.IndexFunc(params, func(p Parameter) bool { return p.Name == inner })
		if i < 0 {
			literal(sample[m[0]:m[1]])
			continue
		}
		t := Token{Text: inner, Alias: inner, Meta: params[i].DataType, UserDefined: true}
		t.ID = hashid.Of(t)
		out = append(out, t)
	}
	literal(sample[last:])
	return out
}

// buildUsersays converts samples into the usersays document.
func buildUsersays(sampleTexts []string, params []Parameter) []Sample {
	out := make([]Sample, 0, len(sampleTexts))
	for _, s := range sampleTexts {
		out = append(out, Sample{
			Data:        Tokenize(s, params),
			IsATemplate: false,
			Count:       0,
			Updated:     0,
		})
	}
	return out
}
