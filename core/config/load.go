package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/josephlewis42/winlaunch/core/winpath"
)

// DefaultPath returns the location of the configuration file beside
// the current executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	dir, _ := winpath.Split(exe)
	return filepath.Join(dir, ConfigurationName), nil
}

// Load reads the configuration file at path, falling back to the
// embedded defaults when the file doesn't exist. An empty path looks
// for ConfigurationName beside the current executable.
func Load(fsys afero.Fs, path string) (*Configuration, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	contents, err := afero.ReadFile(fsys, path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	var out Configuration
	if err := yaml.UnmarshalStrict(contents, &out); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &out, nil
}

// Initialize writes the default configuration file at path, refusing
// to overwrite an existing one.
func Initialize(fsys afero.Fs, path string, logger *log.Logger) error {
	if _, err := fsys.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	logger.Printf("Writing %s", path)
	return afero.WriteFile(fsys, path, defaultConfigData, 0644)
}
