// Package config loads and validates observation export run configuration.
//
// Configuration is YAML on disk, decoded strictly (unknown fields are
// rejected) and then unified with an embedded CUE schema that carries the
// range constraints. Validation happens once at this boundary; everything
// downstream treats the resulting Config as already valid, except for the
// partitioner's own fraction check which the contract requires it to keep.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/flowcal/wellobs/internal/obs"
	"github.com/flowcal/wellobs/internal/resample"
)

//go:embed schema.cue
var schemaCUE string

// Config is a validated export run configuration.
type Config struct {
	Policy           resample.Policy
	TrainingFraction float64
	Vectors          map[string]obs.VectorConfig
}

// fileConfig mirrors the on-disk YAML layout.
type fileConfig struct {
	Resampling       string                      `yaml:"resampling"`
	TrainingFraction float64                     `yaml:"training_fraction"`
	Vectors          map[string]fileVectorConfig `yaml:"vectors"`
}

type fileVectorConfig struct {
	MinError float64 `yaml:"min_error"`
	RelError float64 `yaml:"rel_error"`
}

// Load reads, validates and resolves a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse validates and resolves configuration bytes.
func Parse(data []byte) (*Config, error) {
	// Strict decode catches typos ("vector:" vs "vectors:") before the
	// schema sees anything.
	var cfg fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// A second lenient decode into plain maps feeds the CUE schema.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	if len(cfg.Vectors) == 0 {
		return nil, fmt.Errorf("invalid config: at least one vector is required")
	}

	policy, err := resample.ParsePolicy(cfg.Resampling)
	if err != nil {
		return nil, err
	}

	vectors := make(map[string]obs.VectorConfig, len(cfg.Vectors))
	for name, v := range cfg.Vectors {
		vectors[name] = obs.VectorConfig{MinError: v.MinError, RelError: v.RelError}
	}

	return &Config{
		Policy:           policy,
		TrainingFraction: cfg.TrainingFraction,
		Vectors:          vectors,
	}, nil
}

// validate unifies the decoded document with the embedded #Config schema.
func validate(raw map[string]any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("internal: compiling config schema: %w", err)
	}

	unified := schema.Unify(ctx.Encode(raw))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
