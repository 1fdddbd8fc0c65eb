package domain

import (
	"math"
	"strings"
)

const (
	DefaultImageTitle = "Generated Image"
	DefaultVideoTitle = "Generated Video"
)

// GenerateTitle derives a short title from the first words of a prompt.
// Prompts of three words or fewer are returned unchanged.
func GenerateTitle(prompt string) string {
	words := strings.Split(prompt, " ")
	if len(words) <= 3 {
		return prompt
	}

	n := int(math.Ceil(float64(len(words)) / 3))
	if n > 5 {
		n = 5
	}

	title := strings.Join(words[:n], " ")
	if last := title[len(title)-1:]; strings.ContainsAny(last, ",.!?;:") {
		title = title[:len(title)-1]
	}
	return title + "..."
}

func DefaultTitle(t MediaType) string {
	if t == MediaTypeVideo {
		return DefaultVideoTitle
	}
	return DefaultImageTitle
}
