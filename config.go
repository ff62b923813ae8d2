package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Edouard127/ciede2000/harness"
	"github.com/Edouard127/ciede2000/lab"
)

type Config struct {
	Weights       lab.Weights `yaml:"weights"`
	Tolerance     float64     `yaml:"tolerance"`
	MaxMismatches int         `yaml:"max_mismatches"`
	Output        string      `yaml:"output"`
	PeerPath      string      `yaml:"peer_path"`
	ProgressEvery int         `yaml:"progress_every"` // 0 disables the progress marker
	Seed          uint64      `yaml:"seed"`           // 0 picks a seed from the clock
}

func DefaultConfig() Config {
	return Config{
		Weights:       lab.DefaultWeights,
		Tolerance:     harness.DefaultTolerance,
		MaxMismatches: harness.DefaultMaxMismatches,
		Output:        harness.DefaultOutput,
		PeerPath:      harness.DefaultPeerPath,
		ProgressEvery: 1000,
	}
}

// LoadConfig returns the defaults overridden by the YAML file at path, if any.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return config, fmt.Errorf("decode %s: %w", path, err)
	}

	return config, config.Validate()
}

func (c Config) Validate() error {
	for name, k := range map[string]float64{"kl": c.Weights.KL, "kc": c.Weights.KC, "kh": c.Weights.KH} {
		if !(k > 0) || math.IsInf(k, 0) {
			return fmt.Errorf("weight %s must be positive and finite, got %v", name, k)
		}
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("tolerance must be positive, got %v", c.Tolerance)
	}
	if c.MaxMismatches <= 0 {
		return fmt.Errorf("max_mismatches must be positive, got %d", c.MaxMismatches)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("progress_every must not be negative, got %d", c.ProgressEvery)
	}
	if c.Output == "" {
		return errors.New("output must not be empty")
	}
	if !strings.Contains(c.PeerPath, harness.PeerPlaceholder) {
		return fmt.Errorf("%w: %q", harness.ErrMissingPlaceholder, c.PeerPath)
	}
	return nil
}
