package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seedmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestLoadConfig_File reads the checked-in example.
func TestLoadConfig_File(t *testing.T) {
	cfg, err := LoadConfig("testdata/seedmap.yaml")
	require.NoError(t, err)
	assert.Equal(t, Config{
		Input:    "../../almanac/testdata/sample.txt",
		Mode:     ModeSeeds,
		Workers:  2,
		Coalesce: true,
	}, cfg)
}

// TestLoadConfig_Defaults keeps defaults for absent keys and empty files.
func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(writeConfig(t, "timing: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Timing)
	assert.Equal(t, ModeRanges, cfg.Mode)
	assert.Equal(t, 1, cfg.Workers)
}

// TestLoadConfig_Errors covers unknown keys, bad values and a missing file.
func TestLoadConfig_Errors(t *testing.T) {
	cases := map[string]string{
		"UnknownKey":  "wrokers: 3\n",
		"BadMode":     "mode: fast\n",
		"ZeroWorkers": "workers: 0\n",
		"EmptyInput":  "input: \"\"\n",
		"NotYAML":     "workers: [1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.ErrorIs(t, err, errBadConfig)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
