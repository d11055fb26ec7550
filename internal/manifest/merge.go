package manifest

// Merge deep-merges overlay into base and returns the result. Neither input
// is modified.
//
//   - maps: keys are unioned and common keys merged recursively
//   - slices: merged index by index; overlay element i merges into base
//     element i, base-only indices are kept, overlay-only indices appended
//   - anything else: overlay wins, except that a nil overlay keeps base
//
// Slices are not concatenated: Merge([1,2,3], [9]) is [9,2,3].
func Merge(base, overlay any) any {
	if overlay == nil {
		return Clone(base)
	}
	switch o := overlay.(type) {
	case map[string]any:
		b, ok := asMap(base)
		if !ok {
			return Clone(o)
		}
		out := make(map[string]any, len(b)+len(o))
		for k, v := range b {
			out[k] = Clone(v)
		}
		for k, v := range o {
			out[k] = Merge(out[k], v)
		}
		return out
	case Manifest:
		return Merge(base, map[string]any(o))
	case []any:
		b, ok := base.([]any)
		if !ok {
			return Clone(o)
		}
		n := len(b)
		if len(o) > n {
			n = len(o)
		}
		out := make([]any, n)
		for i := range out {
			switch {
			case i < len(b) && i < len(o):
				out[i] = Merge(b[i], o[i])
			case i < len(o):
				out[i] = Clone(o[i])
			default:
				out[i] = Clone(b[i])
			}
		}
		return out
	default:
		return o
	}
}

// MergeManifests merges overlay into base and returns a new Manifest.
func MergeManifests(base, overlay Manifest) Manifest {
	merged, _ := asMap(Merge(map[string]any(base), map[string]any(overlay)))
	if merged == nil {
		merged = map[string]any{}
	}
	return Manifest(merged)
}

// Clone deep-copies maps and slices; other values are returned as is.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Clone(e)
		}
		return out
	case Manifest:
		return Clone(map[string]any(t))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	default:
		return v
	}
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Manifest:
		return map[string]any(t), true
	}
	return nil, false
}
