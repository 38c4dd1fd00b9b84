// Package preview renders extracted animation colors as images: palette
// swatch sheets, gradient strips, and quick HSL-shift previews. Results are
// returned as base64-encoded PNG for transport in tool responses.
//
// The previews are presentational only; the authoritative recoloring math
// lives in the recolor package. HuePreview in particular approximates the
// engine's per-color shift with whole-image adjustments, which is accurate
// enough for a visual check but not guaranteed to match channel-for-channel.
package preview
