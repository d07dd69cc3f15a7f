package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a platform catalog override.
type catalogFile struct {
	Platforms []Entry `yaml:"platforms"`
}

// LoadCatalog reads a YAML catalog file and merges it over the built-in
// entries. Entries with a known id replace the built-in template; entries
// with a new id extend the catalog. An empty path returns the default
// registry.
func LoadCatalog(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read platform catalog: %w", err)
	}

	var parsed catalogFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse platform catalog: %w", err)
	}

	merged := make([]Entry, len(builtInEntries))
	copy(merged, builtInEntries)

	index := make(map[string]int, len(merged))
	for i, entry := range merged {
		index[entry.ID] = i
	}

	for _, entry := range parsed.Platforms {
		if entry.ID == "" || entry.URLTemplate == "" {
			continue
		}
		if i, ok := index[entry.ID]; ok {
			merged[i] = entry
			continue
		}
		index[entry.ID] = len(merged)
		merged = append(merged, entry)
	}

	return NewRegistry(merged), nil
}
