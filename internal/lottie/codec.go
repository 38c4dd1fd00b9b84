package lottie

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
)

// Decode parses animation bytes into a Document.
//
// Parameters:
//   - data: Plain UTF-8 JSON, or a gzip stream containing it.
//   - compressed: Whether data is the gzip form. The choice is made by the
//     caller from the file-name suffix convention; content is never sniffed.
//
// Returns a single descriptive error on an invalid compressed stream or
// invalid JSON; on error no partial document is produced.
func Decode(data []byte, compressed bool) (Document, error) {
	if compressed {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open compressed animation: %w", err)
		}
		defer zr.Close()
		data, err = io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress animation: %w", err)
		}
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse animation JSON: %w", err)
	}
	return doc, nil
}

// Encode serializes a Document to one of the two interchange encodings:
// plain JSON, or gzip-compressed JSON when compressed is true.
func Encode(doc Document, compressed bool) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize animation: %w", err)
	}
	if !compressed {
		return data, nil
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("failed to compress animation: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress animation: %w", err)
	}
	return buf.Bytes(), nil
}

// MergeColors copies every recognized color field ("c", "sc", "g") from src
// into dst wherever the field exists in both, walking the two trees in
// lockstep by matching keys and indices. Color fields are copied wholesale
// as deep copies; all other paired containers are recursed into; descent
// stops silently where the shapes diverge.
//
// This yields an export document with the pristine structure and incidental
// fields of dst but the edited color values of src.
func MergeColors(src, dst Document) {
	mergeNode(src, dst)
}

func mergeNode(src, dst any) {
	switch s := src.(type) {
	case map[string]any:
		d, ok := dst.(map[string]any)
		if !ok {
			return
		}
		for key, sv := range s {
			dv, ok := d[key]
			if !ok {
				continue
			}
			switch key {
			case "c", "sc", "g":
				d[key] = Clone(sv)
			default:
				mergeNode(sv, dv)
			}
		}
	case []any:
		d, ok := dst.([]any)
		if !ok {
			return
		}
		n := len(s)
		if len(d) < n {
			n = len(d)
		}
		for i := 0; i < n; i++ {
			mergeNode(s[i], d[i])
		}
	}
}
