// Package config loads tool settings from an optional .blok.yaml file in the
// working directory. A missing file yields the defaults; a malformed file is
// an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/blok-lang/blok/internal/render"
)

const FileName = ".blok.yaml"

type Config struct {
	Render  render.Options `yaml:"render"`
	Catalog Catalog        `yaml:"catalog"`
}

type Catalog struct {
	Path string `yaml:"path"`
}

func Default() *Config {
	return &Config{
		Render:  render.DefaultOptions(),
		Catalog: Catalog{Path: "blok.db"},
	}
}

// Load reads dir/.blok.yaml over the defaults. Fields absent from the file
// keep their default values.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
