package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/stateair-etl/internal/domain"
)

// directoryFile is the on-disk shape of DIRECTORY_FILE:
//
//	timezones:
//	  Asia/Tokyo: [Tokyo, Sapporo]
//	coordinates:
//	  Tokyo: {latitude: 35.67, longitude: 139.74}
type directoryFile struct {
	Timezones   map[string][]string           `yaml:"timezones"`
	Coordinates map[string]domain.Coordinates `yaml:"coordinates"`
}

// LoadDirectory returns the built-in post directory with the entries of path
// layered over it. An empty path returns the built-in directory.
func LoadDirectory(path string) (*domain.Directory, error) {
	dir := domain.DefaultDirectory()
	if path == "" {
		return dir, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory file: %w", err)
	}

	var f directoryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse directory file %s: %w", path, err)
	}
	return dir.With(f.Timezones, f.Coordinates), nil
}
