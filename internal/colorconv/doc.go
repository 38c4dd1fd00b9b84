// Package colorconv provides stateless color conversions between normalized
// RGB triples, 8-bit RGB, hex strings, and the HSL/HSV cylindrical spaces.
//
// All conversions are built on github.com/lucasb-eyer/go-colorful. Components
// passed in and out of this package are normalized floats in [0, 1] unless a
// function name says otherwise (FormatHex255 takes 8-bit values).
//
// # Hex Format
//
// Hex strings are parsed leniently (leading "#" optional, any casing, short
// "#rgb" form accepted) and always formatted as lowercase "#rrggbb". Alpha is
// never part of the hex representation.
//
// # HSL Conventions
//
//   - Hue: 0-360 degrees (0=red, 120=green, 240=blue)
//   - Saturation: 0-1
//   - Lightness/Value: 0-1
//
// ShiftHSL, the workhorse of global recoloring, takes its saturation and
// lightness deltas in percent (-100..100) to match the adjustment sliders it
// serves, and wraps the hue delta into [0, 360).
package colorconv
