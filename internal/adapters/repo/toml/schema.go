package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int            `toml:"version"`
	Generations []recordSchema `toml:"generations"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported history schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type recordSchema struct {
	ID          string `toml:"id"`
	Type        string `toml:"type"`
	Prompt      string `toml:"prompt"`
	URL         string `toml:"url"`
	Title       string `toml:"title"`
	Description string `toml:"description,omitempty"`
	Owner       string `toml:"owner,omitempty"`
	CreatedAt   string `toml:"created_at"`
}
