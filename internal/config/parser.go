package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// SettingsFileName is the settings file gvx looks for.
const SettingsFileName = "gvx.toml"

// LoadSettings parses a gvx.toml file at the given path.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	if s.Profiles.Extension == "" {
		s.Profiles.Extension = "xml"
	}

	return &s, nil
}

// FindSettings walks up directories starting from startDir to locate a
// gvx.toml file. Returns the absolute path to the first one found, or an
// error if none exists.
func FindSettings(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path for %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(dir, SettingsFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found in %s or any parent directory", SettingsFileName, startDir)
}
