package profile

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

const (
	ConfigToItem       = "toItem"
	ConfigToChannel    = "toChannel"
	ConfigUndefOnError = "undefOnError"
)

// Config is the configuration of a chain profile.
type Config struct {
	// ToItem is the chain pattern applied to values going to the item.
	ToItem string `mapstructure:"toItem" yaml:"toItem"`
	// ToChannel is the chain pattern applied to commands going to the handler.
	ToChannel string `mapstructure:"toChannel" yaml:"toChannel"`
	// UndefOnError sends UNDEF to the item when a chain fails instead of dropping the value.
	UndefOnError bool `mapstructure:"undefOnError" yaml:"undefOnError"`
}

// DecodeConfig builds a Config from a framework configuration map.
// Missing keys keep their default value, scalar values are converted ("true" is a valid boolean).
func DecodeConfig(configuration map[string]any) (Config, error) {
	var cfg Config
	if len(configuration) == 0 {
		return cfg, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ZeroFields:       true,
	})
	if err != nil {
		return cfg, errors.Wrap(err, "unable to create configuration decoder")
	}

	err = decoder.Decode(configuration)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to decode profile configuration")
	}

	return cfg, nil
}
