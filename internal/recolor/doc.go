// Package recolor implements reversible bulk HSL recoloring of a Lottie
// document and the undo/redo history over its mutation stream.
//
// # Baseline Recomputation
//
// The Engine never shifts colors incrementally. On the first adjustment it
// freezes a deep copy of the document as the baseline; every subsequent
// adjustment deep-copies that baseline and recomputes all colors from it.
// Naive incremental HSL round-trips accumulate floating-point error and make
// "set hue back to 0" drift away from the original colors; recomputing from
// the frozen baseline guarantees exact restoration when all shifts return to
// zero.
//
// # Locks
//
// Individual color locations can be locked by path to exempt them from
// global adjustment. Locks are hierarchical: locking a property path also
// covers its keyframes and individual gradient stops. Before each recompute
// the engine syncs locked locations from the live document back into the
// baseline, so a user's direct edit on a locked swatch sticks across
// recomputes.
//
// # History
//
// History is a bounded two-stack undo/redo log of document snapshots paired
// with the HSL shift state. Saving a state structurally identical to the top
// of the undo stack is a no-op, so focus churn in a UI never pollutes the
// log. The first state saved after load is the undo floor; undo never pops
// below it.
//
// All operations run to completion synchronously; the package imposes no
// locking because the engine contract is single-caller.
package recolor
