package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/lottie-color-mcp/internal/lottie"
	"github.com/ironsheep/lottie-color-mcp/internal/preview"
	"github.com/ironsheep/lottie-color-mcp/internal/recolor"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "animation_load", "color_set").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Operates on the active animation session
//  4. Snapshots the session into history after every mutating edit
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Document lifecycle
	case "animation_load":
		return s.handleAnimationLoad(args)
	case "animation_export":
		return s.handleAnimationExport(args)

	// Color discovery
	case "animation_colors":
		return s.handleAnimationColors(args)

	// Direct edits
	case "color_set":
		return s.handleColorSet(args)
	case "gradient_stop_offset":
		return s.handleGradientStopOffset(args)

	// Global HSL recoloring
	case "hsl_adjust":
		return s.handleHSLAdjust(args)
	case "hsl_reset":
		return s.handleHSLReset(args)
	case "color_lock_toggle":
		return s.handleColorLockToggle(args)
	case "color_locks_clear":
		return s.handleColorLocksClear(args)

	// History
	case "edit_undo":
		return s.handleEditUndo(args)
	case "edit_redo":
		return s.handleEditRedo(args)

	// Previews
	case "palette_preview":
		return s.handlePalettePreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// active returns the current session or an error when nothing is loaded.
func (s *Server) active() (*session, error) {
	if s.session == nil {
		return nil, fmt.Errorf("no animation loaded; call animation_load first")
	}
	return s.session, nil
}

// snapshot records the session's current document and shift state.
func (sess *session) snapshot() {
	sess.history.Save(sess.doc, sess.engine.State())
}

// findInstance re-extracts the working document and locates the instance at
// the given path.
func findInstance(doc lottie.Document, path string) (*lottie.ColorInstance, error) {
	for _, inst := range lottie.Extract(doc).Instances {
		if inst.Path == path {
			return inst, nil
		}
	}
	return nil, fmt.Errorf("no color at path %q", path)
}

// === Document Lifecycle Handlers ===

type animationLoadArgs struct {
	Path string `json:"path"`
}

// AnimationLoadResult describes a freshly loaded animation.
type AnimationLoadResult struct {
	Path       string                `json:"path"`
	Compressed bool                  `json:"compressed"`
	Info       *lottie.AnimationInfo `json:"info"`
	ColorCount int                   `json:"color_count"`
	GroupCount int                   `json:"group_count"`
}

func (s *Server) handleAnimationLoad(args json.RawMessage) (interface{}, error) {
	var a animationLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	// Decode fully before touching the session: a failed load leaves the
	// previous animation intact.
	doc, err := lottie.LoadFile(a.Path)
	if err != nil {
		return nil, err
	}

	sess := &session{
		path:       a.Path,
		compressed: lottie.IsCompressedPath(a.Path),
		doc:        doc,
		original:   lottie.CloneDocument(doc),
		engine:     recolor.NewEngine(),
		history:    recolor.NewHistory(0),
	}
	sess.snapshot() // undo floor
	s.session = sess

	res := lottie.Extract(doc)
	return &AnimationLoadResult{
		Path:       a.Path,
		Compressed: sess.compressed,
		Info:       lottie.Info(doc),
		ColorCount: len(res.Instances),
		GroupCount: len(res.Groups),
	}, nil
}

type animationExportArgs struct {
	Path string `json:"path"`
}

// AnimationExportResult reports a completed export.
type AnimationExportResult struct {
	Path       string `json:"path"`
	Compressed bool   `json:"compressed"`
}

func (s *Server) handleAnimationExport(args json.RawMessage) (interface{}, error) {
	var a animationExportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	if a.Path == "" {
		a.Path = sess.path
	}

	// Export merges edited colors into a pristine copy so structure and
	// incidental fields match the original file exactly.
	out := lottie.CloneDocument(sess.original)
	lottie.MergeColors(sess.doc, out)
	if err := lottie.SaveFile(a.Path, out); err != nil {
		return nil, err
	}
	return &AnimationExportResult{
		Path:       a.Path,
		Compressed: lottie.IsCompressedPath(a.Path),
	}, nil
}

// === Color Discovery Handlers ===

// AnimationColorsResult lists every discovered color location plus the
// hex-value groups, the current shift state, and the locked paths.
type AnimationColorsResult struct {
	Instances   []*lottie.ColorInstance `json:"instances"`
	Groups      []*lottie.ColorGroup    `json:"groups"`
	HSL         recolor.HSLState        `json:"hsl"`
	LockedPaths []string                `json:"locked_paths"`
}

func (s *Server) handleAnimationColors(json.RawMessage) (interface{}, error) {
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	res := lottie.Extract(sess.doc)
	groups := make([]*lottie.ColorGroup, 0, len(res.GroupOrder))
	for _, key := range res.GroupOrder {
		groups = append(groups, res.Groups[key])
	}
	return &AnimationColorsResult{
		Instances:   res.Instances,
		Groups:      groups,
		HSL:         sess.engine.State(),
		LockedPaths: sess.engine.LockedPaths(),
	}, nil
}

// === Direct Edit Handlers ===

type colorSetArgs struct {
	Path string `json:"path"`
	Hex  string `json:"hex"`
}

// ColorSetResult reports a direct color edit.
type ColorSetResult struct {
	Path string `json:"path"`
	Hex  string `json:"hex"`
}

func (s *Server) handleColorSet(args json.RawMessage) (interface{}, error) {
	var a colorSetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	inst, err := findInstance(sess.doc, a.Path)
	if err != nil {
		return nil, err
	}
	if err := lottie.SetInstanceHex(sess.doc, inst, a.Hex); err != nil {
		return nil, err
	}
	sess.snapshot()
	return &ColorSetResult{Path: a.Path, Hex: inst.Hex}, nil
}

type gradientStopOffsetArgs struct {
	Path   string  `json:"path"`
	Offset float64 `json:"offset"`
}

// GradientStopOffsetResult reports a stop move, including the stop's path
// after the owning array was re-sorted by offset.
type GradientStopOffsetResult struct {
	Path    string  `json:"path"`
	NewPath string  `json:"new_path"`
	Offset  float64 `json:"offset"`
}

func (s *Server) handleGradientStopOffset(args json.RawMessage) (interface{}, error) {
	var a gradientStopOffsetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	inst, err := findInstance(sess.doc, a.Path)
	if err != nil {
		return nil, err
	}
	hex := inst.Hex
	if err := lottie.SetStopOffset(sess.doc, inst, a.Offset); err != nil {
		return nil, err
	}
	sess.snapshot()

	// Re-sorting may have moved the stop; report where it landed.
	newPath := a.Path
	for _, cand := range lottie.Extract(sess.doc).Instances {
		if cand.Kind == lottie.KindGradient && cand.Offset != nil &&
			*cand.Offset == a.Offset && cand.Hex == hex {
			newPath = cand.Path
			break
		}
	}
	return &GradientStopOffsetResult{Path: a.Path, NewPath: newPath, Offset: a.Offset}, nil
}

// === Global HSL Handlers ===

type hslAdjustArgs struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// HSLAdjustResult reports the shift state after a global adjustment.
type HSLAdjustResult struct {
	HSL        recolor.HSLState `json:"hsl"`
	ColorCount int              `json:"color_count"`
}

func (s *Server) handleHSLAdjust(args json.RawMessage) (interface{}, error) {
	var a hslAdjustArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	doc, err := sess.engine.Apply(sess.doc, a.Hue, a.Saturation, a.Lightness)
	if err != nil {
		return nil, err
	}
	sess.doc = doc
	sess.snapshot()
	return &HSLAdjustResult{
		HSL:        sess.engine.State(),
		ColorCount: len(lottie.Extract(doc).Instances),
	}, nil
}

func (s *Server) handleHSLReset(json.RawMessage) (interface{}, error) {
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	if doc := sess.engine.Reset(); doc != nil {
		sess.doc = doc
		sess.snapshot()
	}
	return &HSLAdjustResult{HSL: sess.engine.State()}, nil
}

type colorLockToggleArgs struct {
	Path string `json:"path"`
}

// ColorLockToggleResult reports the new lock state of a path.
type ColorLockToggleResult struct {
	Path        string   `json:"path"`
	Locked      bool     `json:"locked"`
	LockedPaths []string `json:"locked_paths"`
}

func (s *Server) handleColorLockToggle(args json.RawMessage) (interface{}, error) {
	var a colorLockToggleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	locked := sess.engine.ToggleLock(a.Path)
	return &ColorLockToggleResult{
		Path:        a.Path,
		Locked:      locked,
		LockedPaths: sess.engine.LockedPaths(),
	}, nil
}

// ColorLocksClearResult reports how many locks were removed.
type ColorLocksClearResult struct {
	Cleared int `json:"cleared"`
}

func (s *Server) handleColorLocksClear(json.RawMessage) (interface{}, error) {
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	n := len(sess.engine.LockedPaths())
	sess.engine.ClearLocks()
	return &ColorLocksClearResult{Cleared: n}, nil
}

// === History Handlers ===

// HistoryResult reports the outcome of an undo or redo.
type HistoryResult struct {
	Restored bool             `json:"restored"`
	HSL      recolor.HSLState `json:"hsl"`
	CanUndo  bool             `json:"can_undo"`
	CanRedo  bool             `json:"can_redo"`
}

func (s *Server) handleEditUndo(json.RawMessage) (interface{}, error) {
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	entry, ok := sess.history.Undo()
	if ok {
		sess.doc = entry.Document
		sess.engine.RestoreState(entry.HSL)
	}
	return &HistoryResult{
		Restored: ok,
		HSL:      sess.engine.State(),
		CanUndo:  sess.history.CanUndo(),
		CanRedo:  sess.history.CanRedo(),
	}, nil
}

func (s *Server) handleEditRedo(json.RawMessage) (interface{}, error) {
	sess, err := s.active()
	if err != nil {
		return nil, err
	}
	entry, ok := sess.history.Redo(sess.doc, sess.engine.State())
	if ok {
		sess.doc = entry.Document
		sess.engine.RestoreState(entry.HSL)
	}
	return &HistoryResult{
		Restored: ok,
		HSL:      sess.engine.State(),
		CanUndo:  sess.history.CanUndo(),
		CanRedo:  sess.history.CanRedo(),
	}, nil
}

// === Preview Handlers ===

type palettePreviewArgs struct {
	CellSize   int     `json:"cell_size"`
	Scale      float64 `json:"scale"`
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

func (s *Server) handlePalettePreview(args json.RawMessage) (interface{}, error) {
	var a palettePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.CellSize == 0 {
		a.CellSize = 48
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	sess, err := s.active()
	if err != nil {
		return nil, err
	}

	res := lottie.Extract(sess.doc)
	img := preview.PaletteSheet(res.Groups, res.GroupOrder, a.CellSize)
	if a.Hue != 0 || a.Saturation != 0 || a.Lightness != 0 {
		img = preview.HuePreview(img, a.Hue, a.Saturation, a.Lightness)
	}
	return preview.Render(img, a.Scale)
}
