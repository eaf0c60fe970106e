package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-chain-profile/pkg/profile"
)

func TestDecodeConfig(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		configuration map[string]any
		expected      profile.Config
	}{
		"nil": {
			configuration: nil,
			expected:      profile.Config{},
		},
		"empty": {
			configuration: map[string]any{},
			expected:      profile.Config{},
		},
		"all keys": {
			configuration: map[string]any{"toItem": "APPEND:a", "toChannel": "DUPLICATE", "undefOnError": true},
			expected:      profile.Config{ToItem: "APPEND:a", ToChannel: "DUPLICATE", UndefOnError: true},
		},
		"only toItem": {
			configuration: map[string]any{"toItem": "APPEND:a"},
			expected:      profile.Config{ToItem: "APPEND:a"},
		},
		"string boolean": {
			configuration: map[string]any{"undefOnError": "true"},
			expected:      profile.Config{UndefOnError: true},
		},
		"unknown keys": {
			configuration: map[string]any{"other": 1, "toChannel": "FAIL"},
			expected:      profile.Config{ToChannel: "FAIL"},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := profile.DecodeConfig(tc.configuration)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDecodeConfigError(t *testing.T) {
	t.Parallel()

	_, err := profile.DecodeConfig(map[string]any{"undefOnError": []string{"yes"}})
	assert.Error(t, err)
}
