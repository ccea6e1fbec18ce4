package config

import (
	"github.com/mitchellh/mapstructure"
)

// OptionDefaults represents the [options] table decoded into typed values.
// Only options that make sense as persistent defaults are listed; one-shot
// options like windowid stay per-call.
type OptionDefaults struct {
	Bottom      *bool   `mapstructure:"bottom"`
	Grab        *bool   `mapstructure:"grab"`
	Insensitive *bool   `mapstructure:"insensitive"`
	Fuzzy       *bool   `mapstructure:"fuzzy"`
	Lines       *int    `mapstructure:"lines"`
	Monitor     *int    `mapstructure:"monitor"`
	Prompt      *string `mapstructure:"prompt"`
	Font        *string `mapstructure:"font"`
	NormalBg    *string `mapstructure:"normal_bg"`
	NormalFg    *string `mapstructure:"normal_fg"`
	SelectedBg  *string `mapstructure:"selected_bg"`
	SelectedFg  *string `mapstructure:"selected_fg"`
	Height      *int    `mapstructure:"height"`
	Width       *int    `mapstructure:"width"`
}

// DecodeOptions декодира [options] таблицата в типизирана структура
func (c *Config) DecodeOptions() (OptionDefaults, error) {
	var opts OptionDefaults
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return opts, err
	}
	if err := decoder.Decode(c.Options); err != nil {
		return OptionDefaults{}, err
	}
	return opts, nil
}
