// Package config loads .annotex.yml configuration files for output
// location, image extensions, and report settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config represents the .annotex.yml configuration file.
type Config struct {
	OutputDir       string   `yaml:"output_dir,omitempty"`
	ImageExtensions []string `yaml:"image_extensions,omitempty"`
	Format          string   `yaml:"format,omitempty"`
	EXIF            bool     `yaml:"exif,omitempty"`
	NoHistory       bool     `yaml:"no_history,omitempty"`
}

// Load reads the .annotex.yml or .annotex.yaml config next to the given
// path. If path is a file, its parent directory is searched. When no local
// config exists, the global config under the user config directory is tried.
// If nothing is found, a zero Config is returned (not an error).
func Load(path string) (Config, error) {
	dir := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		dir = filepath.Dir(path)
	}

	for _, name := range []string{".annotex.yml", ".annotex.yaml"} {
		cfg, ok, err := loadFile(filepath.Join(dir, name))
		if err != nil {
			return Config{}, err
		}
		if ok {
			return cfg, nil
		}
	}

	cfg, _, err := loadFile(GlobalPath())
	return cfg, err
}

// GlobalPath returns the per-user config file location.
func GlobalPath() string {
	return filepath.Join(xdg.ConfigHome, "annotex", "config.yml")
}

func loadFile(path string) (Config, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.Size() > 1<<20 {
		return Config{}, false, fmt.Errorf("config file too large: %s (%d bytes, max 1 MB)", path, info.Size())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false, fmt.Errorf("reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, true, nil
}
