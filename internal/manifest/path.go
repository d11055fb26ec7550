package manifest

import (
	"strconv"
	"strings"
)

// segment is one step of a key path: a map key or a slice index.
type segment struct {
	key   string
	index int
	isIdx bool
}

// parsePath splits "a.b[2].c" into a, b, [2], c. Malformed brackets are
// treated as part of the key.
func parsePath(path string) []segment {
	var segs []segment
	for _, part := range strings.Split(path, ".") {
		for part != "" {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				segs = append(segs, segment{key: part})
				break
			}
			end := strings.IndexByte(part[open:], ']')
			if end < 0 {
				segs = append(segs, segment{key: part})
				break
			}
			end += open
			idx, err := strconv.Atoi(part[open+1 : end])
			if err != nil || idx < 0 {
				segs = append(segs, segment{key: part})
				break
			}
			if open > 0 {
				segs = append(segs, segment{key: part[:open]})
			}
			segs = append(segs, segment{index: idx, isIdx: true})
			part = part[end+1:]
		}
	}
	return segs
}

// SetPath stores value in m at a lodash-style path such as
// "sampleInvocations[0]" or "links.privacy". Intermediate maps and slices
// are created as needed; a value of the wrong shape on the way is replaced.
func SetPath(m map[string]any, path string, value any) {
	segs := parsePath(path)
	if len(segs) == 0 {
		return
	}
	if segs[0].isIdx {
		// A path cannot start with an index; keep it as a literal key.
		m[path] = value
		return
	}
	m[segs[0].key] = setIn(m[segs[0].key], segs[1:], value)
}

func setIn(cur any, segs []segment, value any) any {
	if len(segs) == 0 {
		return value
	}
	s := segs[0]
	if s.isIdx {
		list, _ := cur.([]any)
		for len(list) <= s.index {
			list = append(list, nil)
		}
		list[s.index] = setIn(list[s.index], segs[1:], value)
		return list
	}
	obj, ok := asMap(cur)
	if !ok {
		obj = map[string]any{}
	}
	obj[s.key] = setIn(obj[s.key], segs[1:], value)
	return obj
}
