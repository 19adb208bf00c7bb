// Package config loads the generator settings from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	billy "gopkg.in/src-d/go-billy.v4"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up when no path is given.
const DefaultFile = "edgetiles.yaml"

// ErrInvalidConfig indicates settings that cannot produce the output sheets.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the generator settings.
type Config struct {
	// OutputDir receives both sheets.
	OutputDir string `yaml:"output_dir"`
	// TilesFile is the group sheet name.
	TilesFile string `yaml:"tiles_file"`
	// AdjacencyFile is the adjacency preview sheet name.
	AdjacencyFile string `yaml:"adjacency_file"`
	// Seed drives preview sampling; 0 selects the fixed default seed.
	Seed int64 `yaml:"seed"`
	// AllowOpposite merges mirrored shapes in the group sheet.
	AllowOpposite bool `yaml:"allow_opposite"`
	// GroupSpacing separates tiles within one group row.
	GroupSpacing string `yaml:"group_spacing"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		OutputDir:     ".",
		TilesFile:     "tiles.txt",
		AdjacencyFile: "adjacent_tiles.txt",
		Seed:          0,
		AllowOpposite: true,
		GroupSpacing:  "   ",
	}
}

// Validate reports ErrInvalidConfig for missing or clashing file names.
func (c Config) Validate() error {
	switch {
	case c.OutputDir == "":
		return fmt.Errorf("%w: output_dir is empty", ErrInvalidConfig)
	case c.TilesFile == "" || c.AdjacencyFile == "":
		return fmt.Errorf("%w: output file names must be set", ErrInvalidConfig)
	case c.TilesFile == c.AdjacencyFile:
		return fmt.Errorf("%w: tiles_file and adjacency_file are both %q", ErrInvalidConfig, c.TilesFile)
	}
	return nil
}

// Load reads name from fs and overlays it on Default. A missing file is
// not an error. Unknown keys are rejected.
func Load(fs billy.Filesystem, name string) (Config, error) {
	cfg := Default()
	f, err := fs.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", name, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode %s: %w", name, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
