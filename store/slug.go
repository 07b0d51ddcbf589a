package store

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives the URL-safe identifier for a display name:
// lowercase, non-alphanumeric runs collapse to a single hyphen,
// leading and trailing hyphens trimmed. Deterministic for any input.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = slugPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// SlugOr returns the explicit slug when given, otherwise derives one
// from the name.
func SlugOr(explicit, name string) string {
	if explicit != "" {
		return explicit
	}
	return Slugify(name)
}
