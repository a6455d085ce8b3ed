package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// OptionalText applies a nullable text patch: nil keeps current, a blank string clears it.
func OptionalText(p *string, current *string) *string {
	if p == nil {
		return current
	}
	t := strings.TrimSpace(*p)
	if t == "" {
		return nil
	}
	return &t
}
