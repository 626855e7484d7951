package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Generation bounds accepted by the chart configuration.
const (
	MinGenerations     = 2
	MaxGenerations     = 25
	DefaultGenerations = 4
)

// ValidateGenerations checks that n lies within [MinGenerations, MaxGenerations].
func ValidateGenerations(n int) error {
	if n < MinGenerations || n > MaxGenerations {
		return New(ErrCodeInvalidGenerations, "generations must be between %d and %d, got %d",
			MinGenerations, MaxGenerations, n)
	}
	return nil
}

// ClampGenerations forces n into [MinGenerations, MaxGenerations].
// Zero selects DefaultGenerations.
func ClampGenerations(n int) int {
	switch {
	case n == 0:
		return DefaultGenerations
	case n < MinGenerations:
		return MinGenerations
	case n > MaxGenerations:
		return MaxGenerations
	}
	return n
}

// validLayouts mirrors the orientation names accepted on the command line.
var validLayouts = map[string]bool{"down": true, "up": true, "right": true, "left": true}

// ValidateLayout checks that name is one of the four layout names.
func ValidateLayout(name string) error {
	if name == "" {
		return New(ErrCodeInvalidOrientation, "layout cannot be empty")
	}
	if !validLayouts[strings.ToLower(name)] {
		return New(ErrCodeInvalidOrientation, "invalid layout %q (must be one of: down, up, right, left)", name)
	}
	return nil
}

// ValidateSex checks a sex code. The empty string is accepted and treated
// as unknown by the record loader.
func ValidateSex(code string) error {
	switch code {
	case "", "M", "F", "U":
		return nil
	}
	return New(ErrCodeInvalidRecord, "invalid sex %q (must be one of: M, F, U)", code)
}

// ValidateOutputPath validates a file path an artifact is written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..) after cleaning
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return New(ErrCodeInvalidPath, "path cannot escape the working directory (..)")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
