package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"animation_load",
		"animation_export",
		"animation_colors",
		"color_set",
		"gradient_stop_offset",
		"hsl_adjust",
		"hsl_reset",
		"color_lock_toggle",
		"color_locks_clear",
		"edit_undo",
		"edit_redo",
		"palette_preview",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	// Check all expected tools exist
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("Tool count: got %d, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, tool := range GetToolDefinitions() {
		if seen[tool.Name] {
			t.Errorf("Duplicate tool name: %s", tool.Name)
		}
		seen[tool.Name] = true
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			// Name should not be empty
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}

			// Description should not be empty
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}

			// InputSchema should exist
			if tool.InputSchema == nil {
				t.Error("Tool InputSchema is nil")
			}

			// InputSchema should be an object type
			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			// InputSchema should have properties
			props, ok := tool.InputSchema["properties"]
			if !ok {
				t.Fatal("InputSchema missing 'properties' field")
			}
			propsMap, ok := props.(map[string]interface{})
			if !ok {
				t.Fatal("properties should be a map")
			}

			// Required fields must be declared as properties
			if required, ok := tool.InputSchema["required"]; ok {
				requiredList, ok := required.([]string)
				if !ok {
					t.Fatal("required should be a string slice")
				}
				for _, name := range requiredList {
					if _, ok := propsMap[name]; !ok {
						t.Errorf("Required field %s not in properties", name)
					}
				}
			}
		})
	}
}

func TestToolDefinitions_EveryToolDispatches(t *testing.T) {
	s := New()
	for _, tool := range GetToolDefinitions() {
		// Every advertised tool must be wired into executeTool; with no
		// animation loaded they fail with a session or argument error,
		// never with "unknown tool".
		_, err := s.executeTool(tool.Name, []byte(`{}`))
		if err != nil && err.Error() == "unknown tool: "+tool.Name {
			t.Errorf("Tool %s is advertised but not dispatched", tool.Name)
		}
	}
}
