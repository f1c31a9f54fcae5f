package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version  int                      `toml:"version"`
	Networks map[string]networkSchema `toml:"networks"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Networks == nil {
		s.Networks = map[string]networkSchema{}
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type networkSchema struct {
	Accounts  []string `toml:"accounts"`
	UpdatedAt string   `toml:"updated_at,omitempty"`
}
