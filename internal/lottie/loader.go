package lottie

import (
	"fmt"
	"os"
	"strings"
)

// IsCompressedPath reports whether a file path names the compressed
// interchange encoding, by suffix convention: ".tgs" (gzipped Lottie, the
// Telegram sticker container) or a trailing ".gz". Content is never sniffed.
func IsCompressedPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".tgs") || strings.HasSuffix(lower, ".gz")
}

// LoadFile reads and decodes an animation file, choosing the encoding from
// the file-name suffix.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read animation file: %w", err)
	}
	return Decode(data, IsCompressedPath(path))
}

// SaveFile encodes a document and writes it to path, choosing the encoding
// from the file-name suffix.
func SaveFile(path string, doc Document) error {
	data, err := Encode(doc, IsCompressedPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write animation file: %w", err)
	}
	return nil
}

// AnimationInfo contains document-level metadata read from the standard
// top-level Lottie fields.
type AnimationInfo struct {
	// Name is the animation name ("nm"), if present.
	Name string `json:"name,omitempty"`

	// Version is the Bodymovin exporter version ("v"), if present.
	Version string `json:"version,omitempty"`

	// Width and Height are the composition dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// FrameRate is the playback rate in frames per second.
	FrameRate float64 `json:"frame_rate"`

	// InPoint and OutPoint delimit the playable frame range.
	InPoint  float64 `json:"in_point"`
	OutPoint float64 `json:"out_point"`

	// Layers is the top-level layer count.
	Layers int `json:"layers"`
}

// Info extracts document-level metadata. Missing fields are left zero; this
// never fails, mirroring the lenient color extraction.
func Info(doc Document) *AnimationInfo {
	info := &AnimationInfo{}
	if doc == nil {
		return info
	}
	info.Name, _ = doc["nm"].(string)
	info.Version, _ = doc["v"].(string)
	if w, ok := doc["w"].(float64); ok {
		info.Width = int(w)
	}
	if h, ok := doc["h"].(float64); ok {
		info.Height = int(h)
	}
	info.FrameRate, _ = doc["fr"].(float64)
	info.InPoint, _ = doc["ip"].(float64)
	info.OutPoint, _ = doc["op"].(float64)
	if layers, ok := doc["layers"].([]any); ok {
		info.Layers = len(layers)
	}
	return info
}
