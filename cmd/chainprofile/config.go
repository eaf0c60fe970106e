package main

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/askiada/go-chain-profile/pkg/profile"
)

// FileConfig is the content of a profiles file.
type FileConfig struct {
	LogLevel    string          `yaml:"log_level"`
	MetricsAddr string          `yaml:"metrics_addr"`
	Profiles    []ProfileConfig `yaml:"profiles"`
}

// ProfileConfig declares one profile. Configuration is handed to the profile factory as is.
type ProfileConfig struct {
	Name          string         `yaml:"name"`
	Type          string         `yaml:"type"`
	Configuration map[string]any `yaml:"configuration"`
}

func loadConfigFile(path string) (*FileConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer file.Close()

	cfg, err := parseConfig(file)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid configuration file %s", path)
	}

	return cfg, nil
}

func parseConfig(r io.Reader) (*FileConfig, error) {
	var cfg FileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "unable to decode yaml")
	}

	if len(cfg.Profiles) == 0 {
		return nil, errors.New("at least one profile is required")
	}
	seen := make(map[string]struct{}, len(cfg.Profiles))
	for i := range cfg.Profiles {
		p := &cfg.Profiles[i]
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return nil, errors.Errorf("profiles[%d]: name is required", i)
		}
		if _, ok := seen[p.Name]; ok {
			return nil, errors.Errorf("duplicate profile name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.Type == "" {
			p.Type = profile.TypeUID
		}
	}

	return &cfg, nil
}
