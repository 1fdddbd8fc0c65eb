package domain

import (
	"regexp"
	"strings"
)

const DefaultAspectRatio = "1:1"

var (
	aspectRatioPattern = regexp.MustCompile(`^\d+:\d+$`)
	namedAspectRatios  = map[string]string{
		"square":    "1:1",
		"landscape": "16:9",
		"portrait":  "9:16",
		"wide":      "4:3",
		"tall":      "3:4",
	}
)

// MapAspectRatio translates a UI aspect name into the backend W:H form.
// Literal W:H values pass through; anything else falls back to 1:1.
func MapAspectRatio(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultAspectRatio
	}
	if mapped, ok := namedAspectRatios[strings.ToLower(trimmed)]; ok {
		return mapped
	}
	if aspectRatioPattern.MatchString(trimmed) {
		return trimmed
	}
	return DefaultAspectRatio
}
