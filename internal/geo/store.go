package geo

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"tamvonku/travel-stats/internal/fileutils"
)

// OverrideStore loads user-supplied country-code mappings from a YAML file,
// letting names the builtin table misses (local spellings, abbreviations)
// resolve without a code change.
type OverrideStore struct {
	OverridesFile string
}

// NewOverrideStore creates a store for country-code override data
func NewOverrideStore(overridesFile string) *OverrideStore {
	return &OverrideStore{OverridesFile: overridesFile}
}

// FindConfigFile looks for the overrides file in standard locations
func (s *OverrideStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if fileutils.FileExists(filename) {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,                          // current directory
		filepath.Join("config", filename), // ./config/ directory
	}

	for _, location := range locations {
		if fileutils.FileExists(location) {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "travel-stats", filename)
		if fileutils.FileExists(configPath) {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadOverrides loads country-name to ISO-3 mappings from the YAML file.
// A missing file is not an error; the builtin table stands alone.
func (s *OverrideStore) LoadOverrides() (map[string]string, error) {
	filename := s.OverridesFile
	if filename == "" {
		filename = "countries.yaml"
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("Country overrides file not found: %s", filename)
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("error resolving country overrides file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path resolved from known config locations
	if err != nil {
		return nil, fmt.Errorf("error reading country overrides file: %w", err)
	}

	var mappings map[string]string
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("error parsing country overrides file: %w", err)
	}

	log.Debugf("Loaded %d country overrides from %s", len(mappings), filePath)
	return mappings, nil
}
