package domain

import "time"

type GenerationRecord struct {
	ID          string
	Type        MediaType
	Prompt      string
	URL         string
	Title       string
	Description string
	Owner       string
	CreatedAt   time.Time
}
