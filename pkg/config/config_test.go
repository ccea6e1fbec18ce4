package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := loadDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, "dmenu", cfg.DefaultMenu)
	assert.False(t, cfg.Verbose)
	assert.Contains(t, cfg.Menus, "dmenu")
	assert.Contains(t, cfg.Menus, "rofi")
}

func TestSplitArgs(t *testing.T) {
	tokens, err := MenuArgs{Args: "-i -l 10"}.SplitArgs()
	require.NoError(t, err)
	assert.Equal(t, []string{"-i", "-l", "10"}, tokens)

	// shell quoting keeps multi-word values together
	tokens, err = MenuArgs{Args: "-fn 'monospace 12'"}.SplitArgs()
	require.NoError(t, err)
	assert.Equal(t, []string{"-fn", "monospace 12"}, tokens)

	tokens, err = MenuArgs{}.SplitArgs()
	require.NoError(t, err)
	assert.Nil(t, tokens)

	_, err = MenuArgs{Args: "-fn 'unterminated"}.SplitArgs()
	assert.Error(t, err)
}

func TestMergeConfigs(t *testing.T) {
	defaults := &Config{
		DefaultMenu: "dmenu",
		Menus: map[string]MenuArgs{
			"dmenu": {Args: ""},
			"rofi":  {Args: ""},
		},
		Options: map[string]any{
			"insensitive": true,
		},
	}

	rofi := "rofi"
	verbose := true
	user := &ConfigFile{
		DefaultMenu: &rofi,
		Verbose:     &verbose,
		Menus: map[string]MenuArgs{
			"rofi": {Args: "-theme gruvbox"},
		},
		Options: map[string]any{
			"lines": int64(10),
		},
	}

	merged := mergeConfigs(defaults, user)
	assert.Equal(t, "rofi", merged.DefaultMenu)
	assert.True(t, merged.Verbose)
	assert.Equal(t, "-theme gruvbox", merged.Menus["rofi"].Args)
	assert.Equal(t, "", merged.Menus["dmenu"].Args)

	// option tables merge key by key, user wins on conflict
	assert.Equal(t, true, merged.Options["insensitive"])
	assert.Equal(t, int64(10), merged.Options["lines"])
}

func TestMergeConfigsEmptyUser(t *testing.T) {
	defaults := &Config{DefaultMenu: "dmenu"}
	merged := mergeConfigs(defaults, &ConfigFile{})
	assert.Equal(t, "dmenu", merged.DefaultMenu)
	assert.False(t, merged.Verbose)
}

func TestDecodeOptions(t *testing.T) {
	cfg := &Config{
		Options: map[string]any{
			"insensitive": true,
			"lines":       int64(10), // TOML integers arrive as int64
			"prompt":      "run:",
			"font":        "monospace 12",
		},
	}

	opts, err := cfg.DecodeOptions()
	require.NoError(t, err)
	require.NotNil(t, opts.Insensitive)
	assert.True(t, *opts.Insensitive)
	require.NotNil(t, opts.Lines)
	assert.Equal(t, 10, *opts.Lines)
	require.NotNil(t, opts.Prompt)
	assert.Equal(t, "run:", *opts.Prompt)
	assert.Nil(t, opts.Bottom)
	assert.Nil(t, opts.Height)
}

func TestDecodeOptionsEmpty(t *testing.T) {
	opts, err := (&Config{}).DecodeOptions()
	require.NoError(t, err)
	assert.Nil(t, opts.Insensitive)
	assert.Nil(t, opts.Lines)
}

func TestGetMenuArgs(t *testing.T) {
	cfg := &Config{
		Menus: map[string]MenuArgs{
			"dmenu": {Command: "dmenu_run", Args: "-b"},
		},
	}
	assert.Equal(t, "dmenu_run", cfg.GetMenuArgs("dmenu").Command)
	assert.Equal(t, MenuArgs{}, cfg.GetMenuArgs("missing"))

	// nil map is safe
	assert.Equal(t, MenuArgs{}, (&Config{}).GetMenuArgs("dmenu"))
}
