package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "robots.yaml"

// Load reads the configuration without validating it, so callers can apply
// flag overrides first and then call Validate.
// Search order: customPath -> ~/.robots/config.yaml -> ./configs/robots.yaml -> embedded default.
// Files are layered over the embedded defaults, so they may set only some keys.
// A custom path must exist; search locations are skipped only when missing.
// A file that exists but cannot be read or parsed is an error.
func Load(customPath string) (Config, error) {
	cfg := base()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: reading %s: %w", customPath, err)
		}
		return layer(cfg, customPath, data)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("config: reading %s: %w", path, err)
		}
		return layer(cfg, path, data)
	}

	return cfg, nil
}

// layer decodes data over cfg. On failure cfg comes back unchanged.
func layer(cfg Config, path string, data []byte) (Config, error) {
	layered := cfg
	if err := yaml.Unmarshal(data, &layered); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return layered, nil
}

// base returns the embedded defaults, falling back to the hardcoded ones.
func base() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default()
	}
	return cfg
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", fileName))
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".robots", "config.yaml")
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
