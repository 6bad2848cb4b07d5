// Package validation provides strict parsing and range checks for asset attributes
// and configuration values.
package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Limits on asset names.
const (
	MaxAssetNameLen = 128
)

var (
	// ErrMissing is returned when a required value is absent or blank.
	ErrMissing = errors.New("value is missing")
	// ErrNotNumeric is returned when a value does not parse as a finite number.
	ErrNotNumeric = errors.New("value is not a finite number")
	// ErrOutOfRange is returned when a number falls outside its allowed interval.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidName is returned for asset and type names that fail the character rules.
	ErrInvalidName = errors.New("invalid name")
)

// Object type names: letters, digits, hyphens and underscores.
var validTypeNameChars = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)

// ParseNumber parses raw as a finite float. Surrounding whitespace is allowed,
// anything else that is not a number is rejected.
func ParseNumber(field, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("%s: %w", field, ErrMissing)
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s %q: %w", field, raw, ErrNotNumeric)
	}
	return v, nil
}

// ValidateNormalized checks that v lies in [0, 1].
func ValidateNormalized(field string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s = %g (must be within [0, 1]): %w", field, v, ErrOutOfRange)
	}
	return nil
}

// ValidatePositive checks that v is strictly greater than zero.
func ValidatePositive(field string, v float64) error {
	if !(v > 0) {
		return fmt.Errorf("%s = %g (must be positive): %w", field, v, ErrOutOfRange)
	}
	return nil
}

// ValidateNonNegative checks that v is zero or greater.
func ValidateNonNegative(field string, v float64) error {
	if v < 0 || math.IsNaN(v) {
		return fmt.Errorf("%s = %g (must not be negative): %w", field, v, ErrOutOfRange)
	}
	return nil
}

// ValidateTypeName checks a decoration type name.
func ValidateTypeName(name string) error {
	if name == "" {
		return fmt.Errorf("type name: %w", ErrMissing)
	}
	if len(name) > MaxAssetNameLen {
		return fmt.Errorf("type name too long: %d characters (max %d): %w", len(name), MaxAssetNameLen, ErrInvalidName)
	}
	if !validTypeNameChars.MatchString(name) {
		return fmt.Errorf("type name %q (only letters, digits, hyphens and underscores allowed): %w", name, ErrInvalidName)
	}
	return nil
}

// ValidateAssetPath checks that path is a clean, relative, slash-separated path
// that cannot escape the asset root.
func ValidateAssetPath(path string) error {
	if path == "" {
		return fmt.Errorf("asset path: %w", ErrMissing)
	}
	if len(path) > MaxAssetNameLen {
		return fmt.Errorf("asset path too long: %d characters (max %d): %w", len(path), MaxAssetNameLen, ErrInvalidName)
	}
	if !fs.ValidPath(path) || path == "." {
		return fmt.Errorf("asset path %q: %w", path, ErrInvalidName)
	}
	return nil
}

// MissingKeys returns the distinct required keys for which has reports false, sorted.
func MissingKeys(required []string, has func(string) bool) []string {
	seen := make(map[string]bool, len(required))
	var missing []string
	for _, key := range required {
		if seen[key] {
			continue
		}
		seen[key] = true
		if !has(key) {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}
