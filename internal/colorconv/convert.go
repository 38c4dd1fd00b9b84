package colorconv

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a hex color string into normalized RGB components.
//
// Accepted forms are "#rrggbb", "rrggbb", and the short "#rgb", in any casing.
//
// Returns:
//   - r, g, b: Normalized components in [0, 1].
//   - error: Non-nil if the string is not a valid hex color.
func ParseHex(s string) (r, g, b float64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, 0, fmt.Errorf("empty hex color")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c.R, c.G, c.B, nil
}

// FormatHex formats normalized RGB components as a lowercase "#rrggbb" string.
// Components outside [0, 1] are clamped before formatting.
func FormatHex(r, g, b float64) string {
	c := colorful.Color{R: r, G: g, B: b}.Clamped()
	return c.Hex()
}

// FormatHex255 formats 8-bit RGB components as a lowercase "#rrggbb" string.
func FormatHex255(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBToHSL converts normalized RGB components to HSL.
//
// Returns hue in [0, 360) and saturation/lightness in [0, 1].
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	return colorful.Color{R: r, G: g, B: b}.Clamped().Hsl()
}

// HSLToRGB converts an HSL triple back to normalized RGB components.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	c := colorful.Hsl(h, s, l).Clamped()
	return c.R, c.G, c.B
}

// RGBToHSV converts normalized RGB components to HSV.
//
// Returns hue in [0, 360) and saturation/value in [0, 1].
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	return colorful.Color{R: r, G: g, B: b}.Clamped().Hsv()
}

// HSVToRGB converts an HSV triple back to normalized RGB components.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	c := colorful.Hsv(h, s, v).Clamped()
	return c.R, c.G, c.B
}

// ShiftHSL applies an HSL delta to a normalized RGB color and returns the
// shifted color, still normalized.
//
// Parameters:
//   - r, g, b: Input components in [0, 1].
//   - dh: Hue delta in degrees. The resulting hue is wrapped into [0, 360).
//   - ds: Saturation delta in percent (-100..100).
//   - dl: Lightness delta in percent (-100..100).
//
// Saturation and lightness are clamped to their valid range after the shift,
// so repeated opposing shifts applied to the same *input* cancel out exactly;
// callers that need drift-free behavior must always shift from a frozen
// baseline rather than chaining shifts.
func ShiftHSL(r, g, b, dh, ds, dl float64) (nr, ng, nb float64) {
	h, s, l := colorful.Color{R: r, G: g, B: b}.Clamped().Hsl()

	h = math.Mod(h+dh, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s + ds/100)
	l = clamp01(l + dl/100)

	c := colorful.Hsl(h, s, l).Clamped()
	return c.R, c.G, c.B
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
