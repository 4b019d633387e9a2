package differ

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Compare returns the names present in actual but not in expected (Added)
// and the names present in expected but not in actual (Removed).
// Names are compared byte for byte and both lists are sorted ascending.
func Compare(expected, actual []string) Result {
	expectedSet := toSet(expected)
	actualSet := toSet(actual)

	result := Result{
		Added:   []string{},
		Removed: []string{},
	}

	for name := range actualSet {
		if _, exists := expectedSet[name]; !exists {
			result.Added = append(result.Added, name)
		}
	}

	for name := range expectedSet {
		if _, exists := actualSet[name]; !exists {
			result.Removed = append(result.Removed, name)
		}
	}

	sort.Strings(result.Added)
	sort.Strings(result.Removed)
	return result
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// FilterExcluded drops every name matching one of the doublestar patterns.
func FilterExcluded(names []string, patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		return names, nil
	}

	kept := make([]string, 0, len(names))
	for _, name := range names {
		excluded, err := IsExcluded(name, patterns)
		if err != nil {
			return nil, fmt.Errorf("failed to check exclude pattern for %s: %w", name, err)
		}
		if !excluded {
			kept = append(kept, name)
		}
	}
	return kept, nil
}

func IsExcluded(path string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}

// ValidatePatterns rejects malformed exclude patterns before any input is read.
func ValidatePatterns(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}
	return nil
}
