package utils

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile("[^a-z0-9]+")

func Slugify(s string) string {
	// Convert to lowercase
	s = strings.ToLower(s)
	// Replace non-alphanumeric characters with hyphens
	s = slugPattern.ReplaceAllString(s, "-")
	// Trim hyphens from start and end
	s = strings.Trim(s, "-")
	return s
}
