// Package server implements the MCP (Model Context Protocol) server for Lottie color editing.
//
// This package provides a JSON-RPC 2.0 server that exposes the animation
// recoloring engine through the MCP protocol, so MCP-compatible clients can
// inspect and edit the colors of a Lottie animation without touching its
// timing, geometry, or structure.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Document lifecycle:
//   - animation_load: Load an animation file and start an editing session
//   - animation_export: Merge edited colors into a pristine copy and write it
//
// Color discovery:
//   - animation_colors: List every color location, grouped by hex value
//
// Direct edits:
//   - color_set: Write a hex value through one color location
//   - gradient_stop_offset: Move a gradient stop and re-sort its stops
//
// Global HSL recoloring:
//   - hsl_adjust: Shift hue/saturation/lightness of every unlocked color
//   - hsl_reset: Zero the shifts and restore from the baseline
//   - color_lock_toggle / color_locks_clear: Manage per-path lock exemptions
//
// History:
//   - edit_undo / edit_redo: Walk the bounded snapshot history
//
// Previews:
//   - palette_preview: Render the palette as a base64 PNG swatch sheet
//
// # Session Model
//
// The server holds one active session: the working document being edited, a
// pristine copy of the original for color-only merge on export, the
// recoloring engine, and the edit history. Loading a new file replaces the
// session wholesale; a failed load leaves the previous session untouched.
// All tool execution is synchronous and single-threaded, matching the
// engine's single-caller contract.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Calling an editing tool before animation_load is an ordinary tool error,
// as is addressing a color path that no longer exists.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
