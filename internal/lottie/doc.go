// Package lottie implements the document model for color editing of Lottie
// animations: decoding/encoding the JSON document, discovering every
// color-bearing location in the tree, writing edits back through stable path
// addresses, and merging edited colors into a pristine copy for export.
//
// # Document Model
//
// A Document is the animation JSON exactly as decoded by encoding/json:
// maps, []any sequences, float64 numbers, strings, booleans, and nils. The
// package treats the tree as opaque except for the reserved Lottie field
// names it recognizes at any depth:
//
//   - "c": solid color property
//   - "sc": dedicated stroke color property
//   - "g": gradient property
//   - "ty": shape type tag ("fl", "st", "gf", "gs", ...)
//   - "a": animated flag (1 = keyframed)
//   - "k": property value or keyframe list
//   - "s": keyframe sample value
//   - "p": gradient color stop count
//
// The package never validates animation semantics beyond these fields.
//
// # Path Addresses
//
// Every discovered color location is identified by a Path: a dot/index-joined
// string such as "layers.0.shapes.2.g.k.0". Paths are deterministic across
// repeated extractions of structurally identical documents, which makes them
// usable as lock keys and for relocating the same logical slot in a deep
// copy. Resolving a path that no longer matches the document's shape is a
// silent miss, never a panic: structural edits legitimately invalidate paths.
//
// # Ownership
//
// The Document is owned by the caller. Functions in this package either
// mutate it in place for the duration of one call (write-back, merge) or
// return fresh deep copies (Clone); no function retains a reference.
//
// # Error Handling
//
// Extraction skips malformed color nodes with a diagnostic log line and never
// fails on a traversable tree. Decode errors (bad compressed stream, invalid
// JSON) are returned as single descriptive errors with the cause wrapped.
package lottie
