// pkg/core/load.go
package core

import (
	"bytes"
	"io/fs"
	"os"

	"github.com/go-faster/errors"
	manifest "github.com/joeydtaylor/steeze-pizza/pkg/manifest"
	toml "github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (manifest.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return manifest.Config{}, err
	}
	var cfg manifest.Config
	dec := toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return manifest.Config{}, errors.Wrapf(err, "decode %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return manifest.Config{}, errors.Wrapf(err, "validate %s", path)
	}
	return cfg, nil
}

// LoadConfigOrDefault falls back to manifest.Default when path does not exist.
// Any other read or validation error is returned.
func LoadConfigOrDefault(path string) (cfg manifest.Config, fromFile bool, err error) {
	cfg, err = LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = manifest.Default()
		return cfg, false, cfg.Validate()
	}
	if err != nil {
		return manifest.Config{}, false, err
	}
	return cfg, true, nil
}
