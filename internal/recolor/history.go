package recolor

import (
	"github.com/ironsheep/lottie-color-mcp/internal/lottie"
)

// DefaultMaxEntries is the undo stack bound used when none is configured.
const DefaultMaxEntries = 20

// Entry is one history snapshot: a deep copy of the document paired with the
// HSL shift state in effect when it was taken.
type Entry struct {
	Document lottie.Document
	HSL      HSLState
}

// History is a bounded undo/redo log of document snapshots. The zero value
// is not ready for use; create one with NewHistory.
type History struct {
	undo []*Entry
	redo []*Entry
	max  int
}

// NewHistory creates a history bounded to max undo entries. A max of zero or
// less selects DefaultMaxEntries.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &History{max: max}
}

// Save pushes a snapshot of the current document and shift state.
//
// If the snapshot is structurally identical to the top of the undo stack the
// call is a no-op. Otherwise the oldest entry is discarded once the stack
// exceeds its bound, and the redo stack is cleared: a new forward edit
// invalidates redo history.
func (h *History) Save(doc lottie.Document, hsl HSLState) {
	if top := h.top(); top != nil && top.HSL == hsl && lottie.Equal(top.Document, doc) {
		return
	}

	h.undo = append(h.undo, &Entry{Document: lottie.CloneDocument(doc), HSL: hsl})
	if len(h.undo) > h.max {
		h.undo = h.undo[len(h.undo)-h.max:]
	}
	h.redo = h.redo[:0]
}

// Undo moves the newest snapshot onto the redo stack and returns a deep copy
// of the state to restore. The very first saved state is the undo floor:
// with fewer than two entries Undo is a no-op and returns ok=false.
func (h *History) Undo() (*Entry, bool) {
	if len(h.undo) < 2 {
		return nil, false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, top)

	restored := h.top()
	return &Entry{Document: lottie.CloneDocument(restored.Document), HSL: restored.HSL}, true
}

// Redo returns the most recently undone snapshot, pushing a deep copy of the
// caller's current state onto the undo stack first. With an empty redo stack
// it is a no-op and returns ok=false.
func (h *History) Redo(currentDoc lottie.Document, currentHSL HSLState) (*Entry, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	h.undo = append(h.undo, &Entry{Document: lottie.CloneDocument(currentDoc), HSL: currentHSL})
	if len(h.undo) > h.max {
		h.undo = h.undo[len(h.undo)-h.max:]
	}

	entry := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return entry, true
}

// Clear empties both stacks. Called on new-file load.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}

// Len returns the undo stack depth.
func (h *History) Len() int {
	return len(h.undo)
}

// CanUndo reports whether Undo would restore a state.
func (h *History) CanUndo() bool {
	return len(h.undo) >= 2
}

// CanRedo reports whether Redo would restore a state.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

func (h *History) top() *Entry {
	if len(h.undo) == 0 {
		return nil
	}
	return h.undo[len(h.undo)-1]
}
