package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// Config describes one recipe run: where rows come from, where they go,
// and the lookup tables placed on the run's ExecutionContext (no built-in
// directive reads them). Loaded from YAML or TOML, selected by the
// config file's extension, the way the teacher selects cleaning-config
// format by its own file extension.
type Config struct {
	Recipe string `yaml:"recipe" toml:"recipe"`

	Input struct {
		Path      string `yaml:"path" toml:"path"`
		Type      string `yaml:"type" toml:"type"` // csv|jsonl
		HasHeader bool   `yaml:"has_header" toml:"has_header"`
		Delimiter string `yaml:"delimiter" toml:"delimiter"`
	} `yaml:"input" toml:"input"`

	Output struct {
		Path      string `yaml:"path" toml:"path"`
		Type      string `yaml:"type" toml:"type"` // csv|jsonl|parquet
		Delimiter string `yaml:"delimiter" toml:"delimiter"`
	} `yaml:"output" toml:"output"`

	LookupTables map[string][]string `yaml:"lookup_tables" toml:"lookup_tables"`
}

func loadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return nil, fmt.Errorf("parse toml config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q (want .yaml, .yml, or .toml)", filepath.Ext(path))
	}
	return &cfg, nil
}
