package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Validate checks that Settings has all required fields and valid values.
func Validate(s *Settings) error {
	if s.Profiles.Directory == "" {
		return fmt.Errorf("profiles config: directory is required")
	}

	seen := make(map[string]struct{}, len(s.Static))
	for i, sv := range s.Static {
		if sv.Name == "" {
			return fmt.Errorf("static config: entry %d has no name", i)
		}
		if _, dup := seen[sv.Name]; dup {
			return fmt.Errorf("static config: duplicate name %q", sv.Name)
		}
		seen[sv.Name] = struct{}{}
	}

	return nil
}

// ValidateWithRoot validates Settings and also checks that the profiles
// directory exists relative to rootDir on the filesystem.
func ValidateWithRoot(s *Settings, rootDir string) error {
	if err := Validate(s); err != nil {
		return err
	}

	dir := ProfilesDir(s, rootDir)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("profiles directory %q does not exist: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("profiles directory %q is not a directory", dir)
	}

	return nil
}

// ProfilesDir resolves the configured profiles directory against the
// directory the settings file was found in. Absolute paths are kept as-is.
func ProfilesDir(s *Settings, rootDir string) string {
	if filepath.IsAbs(s.Profiles.Directory) {
		return s.Profiles.Directory
	}

	return filepath.Join(rootDir, s.Profiles.Directory)
}
