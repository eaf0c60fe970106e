package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-chain-profile/pkg/profile"
)

const testConfig = `
log_level: debug
metrics_addr: ":2112"
profiles:
  - name: suffix
    configuration:
      toItem: "APPEND:foo∩APPEND:bar∩DUPLICATE:noparam"
  - name: broken
    type: transform:CHAIN
    configuration:
      toItem: "APPEND:foo∩FAIL:noparam"
      toChannel: "FAIL"
      undefOnError: true
`

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig(strings.NewReader(testConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":2112", cfg.MetricsAddr)
	require.Len(t, cfg.Profiles, 2)
	assert.Equal(t, "suffix", cfg.Profiles[0].Name)
	assert.Equal(t, profile.TypeUID, cfg.Profiles[0].Type)
	assert.Equal(t, map[string]any{"toItem": "APPEND:foo∩APPEND:bar∩DUPLICATE:noparam"}, cfg.Profiles[0].Configuration)
	assert.Equal(t, true, cfg.Profiles[1].Configuration["undefOnError"])
}

func TestParseConfigErrors(t *testing.T) {
	tcs := map[string]struct {
		content string
	}{
		"empty":          {content: ""},
		"no profile":     {content: "profiles: []"},
		"missing name":   {content: "profiles:\n  - type: transform:CHAIN"},
		"duplicate name": {content: "profiles:\n  - name: a\n  - name: a"},
		"unknown field":  {content: "profile:\n  - name: a"},
		"invalid yaml":   {content: "profiles: ["},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := parseConfig(strings.NewReader(tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfig), 0o600))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Profiles, 2)

	_, err = loadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
