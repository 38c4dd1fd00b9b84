package lottie

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/ironsheep/lottie-color-mcp/internal/colorconv"
)

// ColorKind classifies a discovered color location.
type ColorKind string

const (
	KindSolid    ColorKind = "solid"
	KindStroke   ColorKind = "stroke"
	KindGradient ColorKind = "gradient"
)

// ColorInstance is one discovered, writable color location in a Document.
//
// The location is addressed by Path rather than by a live reference: every
// mutation resolves the path against the document it is given, so instances
// stay valid across deep-copy and snapshot boundaries as long as the
// document's shape does.
//
// For solid and stroke colors, Path addresses the 3-4 element normalized
// component array (one per keyframe when animated). For gradient stops, Path
// addresses the stop's first (offset) element inside the flat stop array, so
// the color components live at StopIndex+1..StopIndex+3 of that array.
type ColorInstance struct {
	Kind     ColorKind `json:"kind"`
	Category string    `json:"category"`
	Hex      string    `json:"hex"`
	Path     Path      `json:"path"`

	// Gradient-only fields; nil for solid and stroke instances.
	StopIndex *int     `json:"stop_index,omitempty"` // flat-array offset of the stop's offset element
	Offset    *float64 `json:"offset,omitempty"`     // stop position in [0, 1]
	StopCount *int     `json:"stop_count,omitempty"` // color stops in the owning stop array
}

// ColorGroup aggregates all instances that resolve to one hex value.
type ColorGroup struct {
	Hex       string           `json:"hex"` // first-seen casing
	Count     int              `json:"count"`
	Category  string           `json:"category"` // category of the first instance added
	Instances []*ColorInstance `json:"instances"`
}

// ExtractResult is the outcome of one document extraction.
type ExtractResult struct {
	Instances []*ColorInstance       `json:"instances"`
	Groups    map[string]*ColorGroup `json:"groups"` // keyed by lowercased hex
	// GroupOrder lists group keys in first-seen order for stable presentation.
	GroupOrder []string `json:"group_order"`
}

// Extract walks a document depth-first and returns every color-bearing
// location it recognizes, plus the instances grouped by resulting hex value.
//
// Extraction is total for any traversable tree: malformed or partially typed
// color nodes are skipped with a diagnostic log line, and a nil document
// yields an empty result. Traversal visits map keys in sorted order so that
// instance ordering is deterministic.
func Extract(doc Document) *ExtractResult {
	res := &ExtractResult{
		Groups: make(map[string]*ColorGroup),
	}
	if doc == nil {
		return res
	}
	walkForColors(doc, "", res)
	return res
}

func walkForColors(v any, path Path, res *ExtractResult) {
	switch node := v.(type) {
	case map[string]any:
		if _, ok := node["c"]; ok {
			emitSolid(node, path, "c", res)
		}
		if _, ok := node["sc"]; ok {
			emitSolid(node, path, "sc", res)
		}
		if _, ok := node["g"]; ok {
			emitGradient(node, path, res)
		}
		for _, key := range sortedKeys(node) {
			walkForColors(node[key], JoinPath(path, key), res)
		}
	case []any:
		for i, child := range node {
			walkForColors(child, JoinPath(path, strconv.Itoa(i)), res)
		}
	}
}

// emitSolid handles the "c" (solid/stroke color) and "sc" (dedicated stroke
// color) properties, in both their static and keyframed encodings.
func emitSolid(node map[string]any, path Path, field string, res *ExtractResult) {
	fieldPath := JoinPath(path, field)

	// Collect the component arrays first: "c" also appears in non-color roles
	// (the closed flag on path shapes), and those must not emit or warn.
	type carrier struct {
		path Path
		arr  []any
	}
	var carriers []carrier

	switch val := node[field].(type) {
	case []any:
		// Bare component array without a property wrapper.
		if isNumericSeq(val) && len(val) >= 3 {
			carriers = append(carriers, carrier{fieldPath, val})
		}
	case map[string]any:
		if isAnimated(val) {
			keyframes, _ := val["k"].([]any)
			for i, kf := range keyframes {
				kfMap, ok := kf.(map[string]any)
				if !ok {
					continue
				}
				// Keyframes without an inline numeric sample carry no
				// editable color; skip them silently.
				sample, ok := kfMap["s"].([]any)
				if !ok || !isNumericSeq(sample) || len(sample) < 3 {
					continue
				}
				kfPath := JoinPath(fieldPath, "k."+strconv.Itoa(i)+".s")
				carriers = append(carriers, carrier{kfPath, sample})
			}
		} else if arr, ok := val["k"].([]any); ok && isNumericSeq(arr) && len(arr) >= 3 {
			carriers = append(carriers, carrier{JoinPath(fieldPath, "k"), arr})
		}
	}

	if len(carriers) == 0 {
		return
	}
	kind, category := solidCategory(node, field, path)
	for _, c := range carriers {
		res.add(newSolidInstance(kind, category, c.path, c.arr))
	}
}

func newSolidInstance(kind ColorKind, category string, path Path, arr []any) *ColorInstance {
	r, _ := numAt(arr, 0)
	g, _ := numAt(arr, 1)
	b, _ := numAt(arr, 2)
	return &ColorInstance{
		Kind:     kind,
		Category: category,
		Hex:      colorconv.FormatHex(r, g, b),
		Path:     path,
	}
}

// solidCategory resolves the human category label from the node's shape type
// tag. Unrecognized combinations are still emitted, under an "(unknown)"
// label, so they keep participating in global recoloring.
func solidCategory(node map[string]any, field string, path Path) (ColorKind, string) {
	ty, _ := node["ty"].(string)
	if field == "sc" {
		return KindStroke, "stroke"
	}
	switch ty {
	case "fl":
		return KindSolid, "fill"
	case "st":
		return KindStroke, "stroke"
	default:
		log.Printf("lottie: unrecognized shape type %q for color at %q", ty, JoinPath(path, field))
		return KindSolid, "solid color (unknown)"
	}
}

// emitGradient handles the "g" (gradient) property in its three encodings:
// a bare flat stop array, an animated wrapper with per-keyframe stop arrays,
// and a static wrapper whose "k" is directly a flat stop array.
func emitGradient(node map[string]any, path Path, res *ExtractResult) {
	category := gradientCategory(node)
	gPath := JoinPath(path, "g")

	switch val := node["g"].(type) {
	case []any:
		if isNumericSeq(val) {
			emitStops(val, gPath, -1, category, res)
		}
	case map[string]any:
		emitGradientValue(val, gPath, gradientStopCount(val), category, res)
	}
}

// emitGradientValue handles a gradient property wrapper. The animated flag
// and keyframe list may sit directly on the "g" value or one level down at
// "g.k" (the common export form g = {p, k: {a, k}}), so a map-valued "k" is
// unwrapped once.
func emitGradientValue(m map[string]any, basePath Path, stopCount int, category string, res *ExtractResult) {
	if isAnimated(m) {
		keyframes, _ := m["k"].([]any)
		for i, kf := range keyframes {
			kfMap, ok := kf.(map[string]any)
			if !ok {
				continue
			}
			sample, ok := kfMap["s"].([]any)
			if !ok || !isNumericSeq(sample) {
				continue
			}
			kfPath := JoinPath(basePath, "k."+strconv.Itoa(i)+".s")
			emitStops(sample, kfPath, stopCount, category, res)
		}
		return
	}
	switch k := m["k"].(type) {
	case []any:
		if isNumericSeq(k) {
			emitStops(k, JoinPath(basePath, "k"), stopCount, category, res)
		}
	case map[string]any:
		emitGradientValue(k, JoinPath(basePath, "k"), stopCount, category, res)
	}
}

func gradientCategory(node map[string]any) string {
	ty, _ := node["ty"].(string)
	switch ty {
	case "gf":
		return "gradient fill"
	case "gs":
		return "gradient stroke"
	default:
		return "gradient"
	}
}

// gradientStopCount reads the explicit "p" stop count, unwrapping the common
// {"p": {"k": n}} property form. Returns -1 when absent.
func gradientStopCount(g map[string]any) int {
	switch p := g["p"].(type) {
	case float64:
		return int(p)
	case map[string]any:
		if k, ok := p["k"].(float64); ok {
			return int(k)
		}
	}
	return -1
}

// emitStops appends one gradient instance per color stop of a flat stop
// array. Each stop occupies 4 slots: [offset, r, g, b], with components
// normalized to [0, 1]. Alpha stops beyond the color-stop window are ignored.
func emitStops(arr []any, arrPath Path, stopCount int, category string, res *ExtractResult) {
	if stopCount < 0 {
		stopCount = len(arr) / 4
	}
	for i := 0; i < stopCount; i++ {
		si := i * 4
		if si+3 >= len(arr) {
			break
		}
		offset, ok := numAt(arr, si)
		if !ok {
			continue
		}
		r, _ := numAt(arr, si+1)
		g, _ := numAt(arr, si+2)
		b, _ := numAt(arr, si+3)

		stopIndex := si
		stopOffset := offset
		count := stopCount
		res.add(&ColorInstance{
			Kind:      KindGradient,
			Category:  category,
			Hex:       colorconv.FormatHex(r, g, b),
			Path:      JoinPath(arrPath, strconv.Itoa(si)),
			StopIndex: &stopIndex,
			Offset:    &stopOffset,
			StopCount: &count,
		})
	}
}

// add appends an instance to the flat list and to its hex-keyed group.
func (res *ExtractResult) add(inst *ColorInstance) {
	res.Instances = append(res.Instances, inst)

	key := strings.ToLower(inst.Hex)
	group, ok := res.Groups[key]
	if !ok {
		group = &ColorGroup{Hex: inst.Hex, Category: inst.Category}
		res.Groups[key] = group
		res.GroupOrder = append(res.GroupOrder, key)
	}
	group.Count++
	group.Instances = append(group.Instances, inst)
}

// componentSlots returns the array path and the index of the first color
// component for an instance: solids store components at the head of the
// addressed array, gradient stops at StopIndex+1 of the owning stop array.
func componentSlots(inst *ColorInstance) (arrPath Path, base int) {
	if inst.Kind == KindGradient && inst.StopIndex != nil {
		if dot := strings.LastIndex(inst.Path, "."); dot >= 0 {
			return inst.Path[:dot], *inst.StopIndex + 1
		}
		return "", 0
	}
	return inst.Path, 0
}

// InstanceRGB reads the instance's current normalized components from the
// document. ok is false when the instance's path no longer resolves.
func InstanceRGB(doc Document, inst *ColorInstance) (r, g, b float64, ok bool) {
	arrPath, base := componentSlots(inst)
	v, ok := ResolveValue(doc, arrPath)
	if !ok {
		return 0, 0, 0, false
	}
	arr, ok := v.([]any)
	if !ok || base+2 >= len(arr) {
		return 0, 0, 0, false
	}
	r, okR := numAt(arr, base)
	g, okG := numAt(arr, base+1)
	b, okB := numAt(arr, base+2)
	return r, g, b, okR && okG && okB
}

// SetInstanceRGB writes normalized components through an instance into the
// document. The alpha/4th component, if present, is never touched. The
// instance's Hex field is updated to match the written value.
func SetInstanceRGB(doc Document, inst *ColorInstance, r, g, b float64) error {
	arrPath, base := componentSlots(inst)
	v, ok := ResolveValue(doc, arrPath)
	if !ok {
		return fmt.Errorf("color path %q no longer resolves", inst.Path)
	}
	arr, ok := v.([]any)
	if !ok || base+2 >= len(arr) {
		return fmt.Errorf("color path %q does not address a component array", inst.Path)
	}
	arr[base] = r
	arr[base+1] = g
	arr[base+2] = b
	inst.Hex = colorconv.FormatHex(r, g, b)
	return nil
}

// SetInstanceHex parses a hex string and writes it through an instance.
func SetInstanceHex(doc Document, inst *ColorInstance, hex string) error {
	r, g, b, err := colorconv.ParseHex(hex)
	if err != nil {
		return err
	}
	return SetInstanceRGB(doc, inst, r, g, b)
}

// SetStopOffset moves a gradient stop to a new offset and re-sorts the
// owning stop array's color stops into ascending offset order. The caller
// must re-run Extract afterwards: stop indices of sibling stops may change.
func SetStopOffset(doc Document, inst *ColorInstance, offset float64) error {
	if inst.Kind != KindGradient || inst.StopIndex == nil {
		return fmt.Errorf("instance at %q is not a gradient stop", inst.Path)
	}
	arrPath, _ := componentSlots(inst)
	v, ok := ResolveValue(doc, arrPath)
	if !ok {
		return fmt.Errorf("gradient path %q no longer resolves", inst.Path)
	}
	arr, ok := v.([]any)
	if !ok || *inst.StopIndex+3 >= len(arr) {
		return fmt.Errorf("gradient path %q does not address a stop array", inst.Path)
	}
	arr[*inst.StopIndex] = offset

	count := len(arr) / 4
	if inst.StopCount != nil && *inst.StopCount < count {
		count = *inst.StopCount
	}
	sortStops(arr, count)
	return nil
}

// sortStops stable-sorts the first count [offset, r, g, b] quadruples of a
// flat stop array in place, ascending by offset. Any alpha-stop tail beyond
// the color-stop window is left untouched.
func sortStops(arr []any, count int) {
	type stop struct{ offset, r, g, b any }
	stops := make([]stop, 0, count)
	for i := 0; i < count && i*4+3 < len(arr); i++ {
		si := i * 4
		stops = append(stops, stop{arr[si], arr[si+1], arr[si+2], arr[si+3]})
	}
	sort.SliceStable(stops, func(i, j int) bool {
		a, _ := stops[i].offset.(float64)
		b, _ := stops[j].offset.(float64)
		return a < b
	})
	for i, s := range stops {
		si := i * 4
		arr[si], arr[si+1], arr[si+2], arr[si+3] = s.offset, s.r, s.g, s.b
	}
}

// isAnimated reports whether a property wrapper carries the keyframed flag.
func isAnimated(m map[string]any) bool {
	a, ok := m["a"].(float64)
	return ok && a == 1
}

// isNumericSeq reports whether every element of a sequence is a JSON number.
func isNumericSeq(arr []any) bool {
	if len(arr) == 0 {
		return false
	}
	for _, v := range arr {
		if _, ok := v.(float64); !ok {
			return false
		}
	}
	return true
}

func numAt(arr []any, i int) (float64, bool) {
	if i < 0 || i >= len(arr) {
		return 0, false
	}
	f, ok := arr[i].(float64)
	return f, ok
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
