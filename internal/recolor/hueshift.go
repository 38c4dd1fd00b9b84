package recolor

import (
	"fmt"
	"sort"

	"github.com/ironsheep/lottie-color-mcp/internal/colorconv"
	"github.com/ironsheep/lottie-color-mcp/internal/lottie"
)

// HSLState holds the current global shift values.
type HSLState struct {
	Hue        float64 `json:"hue"`        // degrees, -180..180
	Saturation float64 `json:"saturation"` // percent, -100..100
	Lightness  float64 `json:"lightness"`  // percent, -100..100
}

// Engine applies global hue/saturation/lightness shifts to every unlocked
// color in a document, always recomputing from a frozen baseline copy.
// The zero Engine is not ready for use; create one with NewEngine.
type Engine struct {
	state    HSLState
	locked   map[lottie.Path]struct{}
	baseline lottie.Document
}

// NewEngine creates an engine with no baseline, zero shifts, and no locks.
func NewEngine() *Engine {
	return &Engine{
		locked: make(map[lottie.Path]struct{}),
	}
}

// Apply recomputes the whole document with the given shift values and
// returns a fresh copy; the caller replaces its working document with the
// result. The input document is only read, never retained.
//
// On the first call after a clear the document is captured as the baseline.
// On later calls, locked locations are first synced from the live document
// into the baseline so that direct edits on locked colors survive the
// recompute.
//
// Shift ranges are hue -180..180 degrees and saturation/lightness -100..100
// percent; out-of-range values are clamped.
func (e *Engine) Apply(doc lottie.Document, hue, saturation, lightness float64) (lottie.Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("no document to adjust")
	}

	if e.baseline == nil {
		e.baseline = lottie.CloneDocument(doc)
	} else {
		e.syncLockedColors(doc)
	}

	e.state = HSLState{
		Hue:        clampRange(hue, -180, 180),
		Saturation: clampRange(saturation, -100, 100),
		Lightness:  clampRange(lightness, -100, 100),
	}

	work := lottie.CloneDocument(e.baseline)
	for _, inst := range lottie.Extract(work).Instances {
		if e.IsLocked(inst.Path) {
			continue
		}
		r, g, b, ok := lottie.InstanceRGB(work, inst)
		if !ok {
			continue
		}
		nr, ng, nb := colorconv.ShiftHSL(r, g, b, e.state.Hue, e.state.Saturation, e.state.Lightness)
		if err := lottie.SetInstanceRGB(work, inst, nr, ng, nb); err != nil {
			return nil, err
		}
	}
	return work, nil
}

// syncLockedColors overwrites each locked location in the baseline with its
// current live value. A numeric leaf (a single stop element) syncs the full
// 4-element stop window containing it; map- or sequence-valued leaves are
// deep-copied wholesale. Paths that no longer resolve on either side are
// skipped: that is expected after structural edits.
func (e *Engine) syncLockedColors(doc lottie.Document) {
	for path := range e.locked {
		liveParent, liveKey, liveIdx, ok := lottie.Resolve(doc, path)
		if !ok {
			continue
		}
		baseParent, baseKey, baseIdx, ok := lottie.Resolve(e.baseline, path)
		if !ok {
			continue
		}

		switch lp := liveParent.(type) {
		case []any:
			bp, ok := baseParent.([]any)
			if !ok {
				continue
			}
			if _, isNum := lp[liveIdx].(float64); isNum {
				// Stop window containing the leaf.
				start := liveIdx - liveIdx%4
				for i := start; i < start+4 && i < len(lp) && i < len(bp); i++ {
					bp[i] = lp[i]
				}
			} else if baseIdx >= 0 && baseIdx < len(bp) {
				bp[baseIdx] = lottie.Clone(lp[liveIdx])
			}
		case map[string]any:
			bp, ok := baseParent.(map[string]any)
			if !ok {
				continue
			}
			bp[baseKey] = lottie.Clone(lp[liveKey])
		}
	}
}

// Lock exempts a path (and everything beneath it) from global adjustment.
func (e *Engine) Lock(path lottie.Path) {
	e.locked[path] = struct{}{}
}

// Unlock removes a single lock. Unknown paths are ignored.
func (e *Engine) Unlock(path lottie.Path) {
	delete(e.locked, path)
}

// ToggleLock flips the lock on a path and returns the new state.
func (e *Engine) ToggleLock(path lottie.Path) bool {
	if _, ok := e.locked[path]; ok {
		delete(e.locked, path)
		return false
	}
	e.locked[path] = struct{}{}
	return true
}

// IsLocked reports whether a path is covered by any lock, directly or via a
// locked ancestor.
func (e *Engine) IsLocked(path lottie.Path) bool {
	for locked := range e.locked {
		if lottie.PathHasPrefix(path, locked) {
			return true
		}
	}
	return false
}

// ClearLocks removes every lock.
func (e *Engine) ClearLocks() {
	e.locked = make(map[lottie.Path]struct{})
}

// LockedPaths returns the locked paths in sorted order.
func (e *Engine) LockedPaths() []lottie.Path {
	paths := make([]lottie.Path, 0, len(e.locked))
	for p := range e.locked {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Reset zeroes all three shifts and returns a fresh deep copy of the
// baseline, or nil if no baseline has been captured yet.
func (e *Engine) Reset() lottie.Document {
	e.state = HSLState{}
	if e.baseline == nil {
		return nil
	}
	return lottie.CloneDocument(e.baseline)
}

// Clear discards the baseline, shifts, and locks. Called on new-file load.
func (e *Engine) Clear() {
	e.state = HSLState{}
	e.baseline = nil
	e.locked = make(map[lottie.Path]struct{})
}

// State returns the current shift values.
func (e *Engine) State() HSLState {
	return e.state
}

// RestoreState sets the shift values without recomputing anything. Used when
// undo/redo restores a history entry together with its document snapshot.
func (e *Engine) RestoreState(state HSLState) {
	e.state = state
}

// HasBaseline reports whether a baseline has been captured.
func (e *Engine) HasBaseline() bool {
	return e.baseline != nil
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
