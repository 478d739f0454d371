package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFile reads and parses one legacy document from disk.
func LoadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ValidationError{
			Message:  fmt.Sprintf("Failed to read file: %v", err),
			Field:    "file",
			Actual:   filepath.Base(path),
			Expected: "Readable file",
		}
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ValidationError{
			Message:  fmt.Sprintf("Invalid JSON format: %v", err),
			Field:    "file",
			Actual:   filepath.Base(path),
			Expected: "Valid JSON",
		}
	}
	return doc, nil
}

// SaveFile writes v as pretty-printed UTF-8 JSON, creating parent
// directories as needed. HTML content is written verbatim, not escaped.
func SaveFile(v any, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
