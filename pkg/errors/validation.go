package errors

import (
	"strings"
	"unicode"
)

// ValidateToolID validates a tool identifier for safety and correctness.
// Tool IDs are used in cache keys, SVG element IDs, and store lookups, so
// the rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No whitespace
//   - Maximum length of 128 characters
func ValidateToolID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDataset, "tool id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidDataset, "tool id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDataset, "tool id contains control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidDataset, "tool id cannot contain whitespace: %q", id)
		}
	}

	return nil
}

// ValidateDatasetName validates a dataset name used for publishing and
// fetching from the shared store. Names must be simple identifiers without
// path components.
func ValidateDatasetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDataset, "dataset name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidDataset, "dataset name too long (max 128 characters)")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidDataset, "dataset name cannot contain path separators")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDataset, "dataset name contains control characters")
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
