package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edouard127/ciede2000/harness"
	"github.com/Edouard127/ciede2000/lab"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, lab.DefaultWeights, config.Weights)
	assert.Equal(t, 1e-10, config.Tolerance)
	assert.Equal(t, 10, config.MaxMismatches)
	assert.Equal(t, "./values-go.txt", config.Output)
	assert.Equal(t, "../{peer}/values-{peer}.txt", config.PeerPath)

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
weights:
  kl: 2
  kc: 1
  kh: 1
tolerance: 1e-8
seed: 12
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, lab.Weights{KL: 2, KC: 1, KH: 1}, config.Weights)
	assert.Equal(t, 1e-8, config.Tolerance)
	assert.Equal(t, uint64(12), config.Seed)
	assert.Equal(t, harness.DefaultMaxMismatches, config.MaxMismatches)
	assert.Equal(t, harness.DefaultPeerPath, config.PeerPath)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tolerence: 1e-10\n"), 0o644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"zero weight":      func(c *Config) { c.Weights.KC = 0 },
		"negative weight":  func(c *Config) { c.Weights.KH = -1 },
		"zero tolerance":   func(c *Config) { c.Tolerance = 0 },
		"no mismatches":    func(c *Config) { c.MaxMismatches = 0 },
		"negative markers": func(c *Config) { c.ProgressEvery = -1 },
		"no output":        func(c *Config) { c.Output = "" },
		"no placeholder":   func(c *Config) { c.PeerPath = "values.txt" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			config := DefaultConfig()
			mutate(&config)
			assert.Error(t, config.Validate())
		})
	}
}
