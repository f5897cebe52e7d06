package profile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FromFile reads a plain-text résumé file and extracts a profile from it.
// PDF and other binary documents are rejected rather than garbled.
func FromFile(path string, tax Taxonomy) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading resume: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case "", ".txt", ".text", ".md":
	default:
		return Profile{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if bytes.HasPrefix(data, []byte("%PDF")) || bytes.ContainsRune(data, 0) {
		return Profile{}, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	return Extract(string(data), tax), nil
}
