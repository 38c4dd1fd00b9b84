package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Document lifecycle
		{
			Name:        "animation_load",
			Description: "Load a Lottie animation file (.json, or gzip-compressed .tgs/.json.gz) and make it the active editing session. Resets recoloring state and edit history.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the animation file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "animation_export",
			Description: "Export the edited animation. Colors are merged into a pristine copy of the original document, so structure and field ordering match the loaded file exactly. The output encoding follows the file-name suffix.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Output file path. Defaults to the loaded file's path.",
					},
				},
			},
		},

		// Color discovery
		{
			Name:        "animation_colors",
			Description: "List every color location in the animation (solid fills, strokes, gradient stops, per keyframe), grouped by hex value, together with the current HSL shift state and locked paths.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Direct edits
		{
			Name:        "color_set",
			Description: "Set one color location to a new hex value. The path comes from animation_colors. Gradient stop paths address the stop's offset element; only the RGB components are written, alpha is never touched.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Color location path (from animation_colors)",
					},
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "New color as hex, e.g. \"#ff8040\"",
					},
				},
				"required": []string{"path", "hex"},
			},
		},
		{
			Name:        "gradient_stop_offset",
			Description: "Move a gradient stop to a new offset. The owning stop array is re-sorted into ascending offset order, so stop paths may change; the result reports where the stop landed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Gradient stop path (from animation_colors)",
					},
					"offset": map[string]interface{}{
						"type":        "number",
						"description": "New stop offset, typically in [0, 1]",
					},
				},
				"required": []string{"path", "offset"},
			},
		},

		// Global HSL recoloring
		{
			Name:        "hsl_adjust",
			Description: "Apply a global hue/saturation/lightness shift to every unlocked color. Always recomputed from the pristine baseline captured on the first adjustment, so returning all three values to 0 restores the original colors exactly.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hue": map[string]interface{}{
						"type":        "number",
						"description": "Hue shift in degrees (-180..180)",
					},
					"saturation": map[string]interface{}{
						"type":        "number",
						"description": "Saturation shift in percent (-100..100)",
					},
					"lightness": map[string]interface{}{
						"type":        "number",
						"description": "Lightness shift in percent (-100..100)",
					},
				},
			},
		},
		{
			Name:        "hsl_reset",
			Description: "Zero all three HSL shifts and restore the document from the baseline.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "color_lock_toggle",
			Description: "Toggle the lock on a color path. Locked paths (and everything beneath them) are exempt from global HSL adjustment; direct edits on locked colors stick across recomputes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Color location path to lock or unlock",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "color_locks_clear",
			Description: "Remove every color lock.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// History
		{
			Name:        "edit_undo",
			Description: "Undo the last edit. The initial loaded state is the floor; undoing past it is a no-op.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "edit_redo",
			Description: "Redo the most recently undone edit. A no-op when nothing has been undone since the last forward edit.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Previews
		{
			Name:        "palette_preview",
			Description: "Render the animation's color palette as a swatch sheet (base64 PNG), optionally with a whole-image HSL adjustment applied for a quick visual of a prospective shift.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch edge length in pixels (default 48)",
						"default":     48,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor for the rendered sheet. Default 1.0",
						"default":     1.0,
					},
					"hue": map[string]interface{}{
						"type":        "number",
						"description": "Preview hue shift in degrees",
					},
					"saturation": map[string]interface{}{
						"type":        "number",
						"description": "Preview saturation shift in percent",
					},
					"lightness": map[string]interface{}{
						"type":        "number",
						"description": "Preview lightness shift in percent",
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
