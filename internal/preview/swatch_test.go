package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"testing"

	"github.com/ironsheep/lottie-color-mcp/internal/lottie"
)

func testGroups(hexes ...string) (map[string]*lottie.ColorGroup, []string) {
	groups := make(map[string]*lottie.ColorGroup, len(hexes))
	order := make([]string, 0, len(hexes))
	for _, hex := range hexes {
		groups[hex] = &lottie.ColorGroup{Hex: hex, Count: 1}
		order = append(order, hex)
	}
	return groups, order
}

func rgbaAt(img image.Image, x, y int) (r, g, b, a uint8) {
	r16, g16, b16, a16 := img.At(x, y).RGBA()
	return uint8(r16 >> 8), uint8(g16 >> 8), uint8(b16 >> 8), uint8(a16 >> 8)
}

func TestPaletteSheet_Layout(t *testing.T) {
	groups, order := testGroups("#ff0000", "#00ff00", "#0000ff")
	img := PaletteSheet(groups, order, 10)

	if img.Bounds().Dx() != 30 || img.Bounds().Dy() != 10 {
		t.Fatalf("sheet = %v, want 30x10", img.Bounds())
	}

	r, g, b, _ := rgbaAt(img, 5, 5)
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("first swatch = (%d,%d,%d), want red", r, g, b)
	}
	r, g, b, _ = rgbaAt(img, 15, 5)
	if r != 0 || g != 255 || b != 0 {
		t.Errorf("second swatch = (%d,%d,%d), want green", r, g, b)
	}
	r, g, b, _ = rgbaAt(img, 25, 5)
	if r != 0 || g != 0 || b != 255 {
		t.Errorf("third swatch = (%d,%d,%d), want blue", r, g, b)
	}
}

func TestPaletteSheet_WrapsRows(t *testing.T) {
	hexes := make([]string, 10)
	for i := range hexes {
		hexes[i] = fmt.Sprintf("#%06x", i+1)
	}
	groups, order := testGroups(hexes...)
	img := PaletteSheet(groups, order, 8)
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 16 {
		t.Errorf("sheet = %v, want 64x16 (8 columns, 2 rows)", img.Bounds())
	}
}

func TestPaletteSheet_Empty(t *testing.T) {
	img := PaletteSheet(map[string]*lottie.ColorGroup{}, nil, 16)
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("empty sheet = %v, want a single transparent cell", img.Bounds())
	}
}

func TestGradientStrip(t *testing.T) {
	stops := []Stop{
		{Offset: 0, R: 1, G: 0, B: 0},
		{Offset: 1, R: 0, G: 0, B: 1},
	}
	img := GradientStrip(stops, 101, 4)

	r, _, b, _ := rgbaAt(img, 0, 0)
	if r != 255 || b != 0 {
		t.Errorf("left edge = (%d,_,%d), want pure red", r, b)
	}
	r, _, b, _ = rgbaAt(img, 100, 0)
	if r != 0 || b != 255 {
		t.Errorf("right edge = (_,%d,%d), want pure blue", r, b)
	}
	r, _, b, _ = rgbaAt(img, 50, 0)
	if r < 120 || r > 135 || b < 120 || b > 135 {
		t.Errorf("midpoint = (%d,_,%d), want ~half red half blue", r, b)
	}
}

func TestGradientStrip_EdgeClamping(t *testing.T) {
	stops := []Stop{
		{Offset: 0.25, R: 1, G: 1, B: 0},
		{Offset: 0.75, R: 0, G: 1, B: 1},
	}
	img := GradientStrip(stops, 100, 2)

	r, g, b, _ := rgbaAt(img, 0, 0)
	if r != 255 || g != 255 || b != 0 {
		t.Errorf("before first stop = (%d,%d,%d), want first stop color", r, g, b)
	}
	r, g, b, _ = rgbaAt(img, 99, 0)
	if r != 0 || g != 255 || b != 255 {
		t.Errorf("after last stop = (%d,%d,%d), want last stop color", r, g, b)
	}
}

func TestHuePreview_RotatesHue(t *testing.T) {
	groups, order := testGroups("#ff0000")
	img := HuePreview(PaletteSheet(groups, order, 8), 120, 0, 0)

	r, g, _, _ := rgbaAt(img, 4, 4)
	if g <= r {
		t.Errorf("red rotated +120 should be green-dominant, got r=%d g=%d", r, g)
	}
}

func TestRender(t *testing.T) {
	groups, order := testGroups("#ff0000", "#00ff00")
	sheet := PaletteSheet(groups, order, 16)

	result, err := Render(sheet, 1.0)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if result.MimeType != "image/png" {
		t.Errorf("mime type = %s", result.MimeType)
	}
	if result.Width != 32 || result.Height != 16 {
		t.Errorf("rendered size = %dx%d, want 32x16", result.Width, result.Height)
	}

	raw, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("result is not valid base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("result is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 32 {
		t.Errorf("decoded width = %d", decoded.Bounds().Dx())
	}
}

func TestRender_Scale(t *testing.T) {
	groups, order := testGroups("#123456")
	sheet := PaletteSheet(groups, order, 16)

	result, err := Render(sheet, 2.0)
	if err != nil {
		t.Fatal(err)
	}
	if result.Width != 32 || result.Height != 32 {
		t.Errorf("scaled size = %dx%d, want 32x32", result.Width, result.Height)
	}
}
