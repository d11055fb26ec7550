// Package hashid derives stable identifiers from content. Two values with the
// same content always get the same identifier, across runs and machines, so
// regenerated artifacts keep their ids and diffs stay small.
package hashid

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Namespace is the UUID namespace every identifier is derived in.
var Namespace = uuid.NameSpaceDNS

// Of returns a version 5 UUID computed over the canonical form of v. A
// top-level "id" field is ignored, so an entity can be hashed with or
// without its identifier already set.
func Of(v any) string {
	return uuid.NewSHA1(Namespace, Canonical(v)).String()
}

// Canonical encodes v as JSON with object keys sorted at every depth and the
// top-level "id" key removed.
func Canonical(v any) []byte {
	raw, err := json.Marshal(v)
	if err != nil {
		return []byte(fmt.Sprintf("%#v", v))
	}

	// Round-trip through the generic form: encoding/json sorts map keys,
	// which erases struct field order and source key order alike.
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return raw
	}
	if obj, ok := generic.(map[string]any); ok {
		delete(obj, "id")
	}
	out, err := json.Marshal(generic)
	if err != nil {
		return raw
	}
	return out
}
