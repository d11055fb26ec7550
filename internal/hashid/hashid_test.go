package hashid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type element struct {
	Text        string `json:"text,omitempty"`
	UserDefined bool   `json:"userDefined"`
	ID          string `json:"id,omitempty"`
}

type reordered struct {
	UserDefined bool   `json:"userDefined"`
	Text        string `json:"text,omitempty"`
}

func TestOf_IsValidUUIDv5(t *testing.T) {
	t.Parallel()

	id := Of(map[string]any{"name": "LaunchIntent"})

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
}

func TestOf_Stability(t *testing.T) {
	t.Parallel()

	base := Of(element{Text: "hello", UserDefined: false})

	t.Run("same content hashes equal", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, base, Of(element{Text: "hello"}))
	})

	t.Run("field order is irrelevant", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, base, Of(reordered{Text: "hello"}))
		assert.Equal(t, base, Of(map[string]any{"userDefined": false, "text": "hello"}))
	})

	t.Run("id field is excluded", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, base, Of(element{Text: "hello", ID: "anything"}))
	})

	t.Run("changing a value changes the id", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, base, Of(element{Text: "hello", UserDefined: true}))
		assert.NotEqual(t, base, Of(element{Text: "hello!"}))
	})
}

func TestOf_NestedMapsAreCanonical(t *testing.T) {
	t.Parallel()

	a := map[string]any{"outer": map[string]any{"b": 1, "a": []any{"x", map[string]any{"d": 1, "c": 2}}}}
	b := map[string]any{"outer": map[string]any{"a": []any{"x", map[string]any{"c": 2, "d": 1}}, "b": 1}}

	assert.Equal(t, Of(a), Of(b))
}

func TestOf_NestedIDIsContent(t *testing.T) {
	t.Parallel()

	// Only the top-level id is identity; nested ids are ordinary content.
	a := map[string]any{"child": map[string]any{"id": "1"}}
	b := map[string]any{"child": map[string]any{"id": "2"}}

	assert.NotEqual(t, Of(a), Of(b))
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	got := Canonical(map[string]any{"b": 1, "a": true, "id": "x"})

	assert.Equal(t, `{"a":true,"b":1}`, string(got))
}
