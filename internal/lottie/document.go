package lottie

import (
	"reflect"
	"strconv"
	"strings"
)

// Document is an animation tree as decoded by encoding/json. The alias keeps
// nested maps and the root interchangeable in type switches.
type Document = map[string]any

// Path is a stable, serializable address of a location in a Document:
// map keys and sequence indices joined with dots, empty at the root.
type Path = string

// JoinPath appends a key or index segment to a parent path.
func JoinPath(parent Path, segment string) Path {
	if parent == "" {
		return segment
	}
	return parent + "." + segment
}

// PathHasPrefix reports whether path equals prefix or lies beneath it.
// This is the hierarchical containment test used for color locks: locking a
// parent path implicitly locks everything below it.
func PathHasPrefix(path, prefix Path) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+".")
}

// Resolve walks a path down to its final segment and returns the containing
// node plus the final key or index.
//
// Returns:
//   - parent: The map or []any directly containing the addressed value.
//   - key: The final map key (when parent is a map).
//   - index: The final sequence index (when parent is a []any, else -1).
//   - ok: False if the path does not match the document's current shape.
//
// A false ok is an expected outcome after structural edits; callers treat it
// as a no-op.
func Resolve(doc Document, path Path) (parent any, key string, index int, ok bool) {
	if path == "" {
		return nil, "", -1, false
	}
	segments := strings.Split(path, ".")
	var cur any = doc
	for _, seg := range segments[:len(segments)-1] {
		cur, ok = step(cur, seg)
		if !ok {
			return nil, "", -1, false
		}
	}

	last := segments[len(segments)-1]
	switch c := cur.(type) {
	case map[string]any:
		if _, exists := c[last]; !exists {
			return nil, "", -1, false
		}
		return c, last, -1, true
	case []any:
		i, err := strconv.Atoi(last)
		if err != nil || i < 0 || i >= len(c) {
			return nil, "", -1, false
		}
		return c, "", i, true
	default:
		return nil, "", -1, false
	}
}

// ResolveValue returns the value addressed by path, or ok=false on a miss.
func ResolveValue(doc Document, path Path) (any, bool) {
	parent, key, index, ok := Resolve(doc, path)
	if !ok {
		return nil, false
	}
	if m, isMap := parent.(map[string]any); isMap {
		return m[key], true
	}
	return parent.([]any)[index], true
}

// step descends one segment into a map or sequence.
func step(cur any, seg string) (any, bool) {
	switch c := cur.(type) {
	case map[string]any:
		v, exists := c[seg]
		return v, exists
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(c) {
			return nil, false
		}
		return c[i], true
	default:
		return nil, false
	}
}

// Clone deep-copies a JSON-shaped value (maps, sequences, scalars).
// Scalars are immutable and copied by value.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, child := range t {
			out[k] = Clone(child)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, child := range t {
			out[i] = Clone(child)
		}
		return out
	default:
		return v
	}
}

// CloneDocument deep-copies a Document. A nil document clones to nil.
func CloneDocument(doc Document) Document {
	if doc == nil {
		return nil
	}
	return Clone(doc).(map[string]any)
}

// Equal reports structural equality of two JSON-shaped values.
func Equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
