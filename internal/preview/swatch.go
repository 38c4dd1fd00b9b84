package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/lottie-color-mcp/internal/colorconv"
	"github.com/ironsheep/lottie-color-mcp/internal/lottie"
)

// sheetColumns is the fixed number of swatches per palette sheet row.
const sheetColumns = 8

// RenderResult contains a rendered preview image.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// PaletteSheet renders one swatch per color group, row-major in the given
// group order, 8 swatches per row.
//
// Parameters:
//   - groups: Extraction groups keyed by lowercased hex.
//   - order: Group keys in presentation order (typically first-seen order).
//   - cell: Swatch edge length in pixels; values below 1 select 48.
//
// Group keys missing from groups or carrying unparseable hex values render
// as transparent cells rather than failing the sheet.
func PaletteSheet(groups map[string]*lottie.ColorGroup, order []string, cell int) image.Image {
	if cell < 1 {
		cell = 48
	}
	count := len(order)
	if count == 0 {
		return imaging.New(cell, cell, color.NRGBA{})
	}

	cols := sheetColumns
	if count < cols {
		cols = count
	}
	rows := (count + sheetColumns - 1) / sheetColumns

	sheet := imaging.New(cols*cell, rows*cell, color.NRGBA{})
	for i, key := range order {
		group, ok := groups[key]
		if !ok {
			continue
		}
		r, g, b, err := colorconv.ParseHex(group.Hex)
		if err != nil {
			continue
		}
		swatch := imaging.New(cell, cell, color.NRGBA{
			R: uint8(r*255 + 0.5),
			G: uint8(g*255 + 0.5),
			B: uint8(b*255 + 0.5),
			A: 255,
		})
		pos := image.Pt((i%sheetColumns)*cell, (i/sheetColumns)*cell)
		sheet = imaging.Paste(sheet, swatch, pos)
	}
	return sheet
}

// Stop is one gradient color stop for strip rendering.
type Stop struct {
	Offset  float64
	R, G, B float64 // normalized
}

// GradientStrip renders a horizontal strip interpolating linearly in RGB
// between the given stops. Stops must be sorted ascending by offset; columns
// before the first stop and after the last take the edge stop's color.
func GradientStrip(stops []Stop, width, height int) image.Image {
	if width < 1 {
		width = 256
	}
	if height < 1 {
		height = 32
	}
	strip := image.NewNRGBA(image.Rect(0, 0, width, height))
	if len(stops) == 0 {
		return strip
	}

	for x := 0; x < width; x++ {
		pos := 0.0
		if width > 1 {
			pos = float64(x) / float64(width-1)
		}
		r, g, b := sampleStops(stops, pos)
		c := color.NRGBA{
			R: uint8(r*255 + 0.5),
			G: uint8(g*255 + 0.5),
			B: uint8(b*255 + 0.5),
			A: 255,
		}
		for y := 0; y < height; y++ {
			strip.SetNRGBA(x, y, c)
		}
	}
	return strip
}

func sampleStops(stops []Stop, pos float64) (r, g, b float64) {
	first := stops[0]
	if pos <= first.Offset {
		return first.R, first.G, first.B
	}
	last := stops[len(stops)-1]
	if pos >= last.Offset {
		return last.R, last.G, last.B
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if pos > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.R, hi.G, hi.B
		}
		t := (pos - lo.Offset) / span
		return lo.R + (hi.R-lo.R)*t, lo.G + (hi.G-lo.G)*t, lo.B + (hi.B-lo.B)*t
	}
	return last.R, last.G, last.B
}

// HuePreview applies whole-image HSL-style adjustments to a preview image:
// hue in degrees, saturation and lightness in percent (-100..100).
func HuePreview(img image.Image, hue, saturation, lightness float64) image.Image {
	out := image.Image(adjust.Hue(img, int(hue)))
	if saturation != 0 {
		out = adjust.Saturation(out, saturation/100)
	}
	if lightness != 0 {
		out = adjust.Brightness(out, lightness/100)
	}
	return out
}

// Render encodes an image as base64 PNG, optionally resizing by scale.
func Render(img image.Image, scale float64) (*RenderResult, error) {
	if scale != 1.0 && scale > 0 {
		w := int(float64(img.Bounds().Dx()) * scale)
		h := int(float64(img.Bounds().Dy()) * scale)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode preview image: %w", err)
	}
	return &RenderResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
