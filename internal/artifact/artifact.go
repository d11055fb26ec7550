// Package artifact holds generated output before it is written anywhere.
//
// Generators append Artifacts to a Collector; a Sink then persists the
// collected set. Nothing in this package runs concurrently.
package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Artifact is one output file. Content is either a JSON value, encoded with
// two-space indentation, or []byte, written verbatim.
type Artifact struct {
	Path    string
	Content any
}

// Encode returns the bytes that are written for a.
func (a Artifact) Encode() ([]byte, error) {
	if raw, ok := a.Content.([]byte); ok {
		return raw, nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a.Content); err != nil {
		return nil, fmt.Errorf("failed to encode artifact %s: %w", a.Path, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Collector accumulates artifacts in generation order. Adding an artifact
// whose path is already present replaces the earlier one in place.
type Collector struct {
	items []Artifact
	index map[string]int
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{index: make(map[string]int)}
}

// Add appends an artifact, or replaces the one already at path.
func (c *Collector) Add(path string, content any) {
	if i, ok := c.index[path]; ok {
		c.items[i].Content = content
		return
	}
	c.index[path] = len(c.items)
	c.items = append(c.items, Artifact{Path: path, Content: content})
}

// Artifacts returns the collected artifacts in first-added order.
func (c *Collector) Artifacts() []Artifact {
	out := make([]Artifact, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct paths collected.
func (c *Collector) Len() int { return len(c.items) }
