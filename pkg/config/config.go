// Package config provides configuration management for xmenu.
// It handles loading, merging, and accessing configuration from default and user config files.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/shlex"
)

//go:embed default.toml
var defaultConfigData string

// Config структура
type Config struct {
	DefaultMenu string              `toml:"default_menu"`
	Verbose     bool                `toml:"verbose"`
	Menus       map[string]MenuArgs `toml:"menus"`
	Options     map[string]any      `toml:"options"`
}

// MenuArgs описва как да се стартира конкретен menu variant
type MenuArgs struct {
	Command string `toml:"command"`
	Args    string `toml:"args"`
}

// SplitArgs splits the configured args string into tokens, honoring shell
// quoting so values like -fn 'monospace 12' survive.
func (m MenuArgs) SplitArgs() ([]string, error) {
	if m.Args == "" {
		return nil, nil
	}
	tokens, err := shlex.Split(m.Args)
	if err != nil {
		return nil, fmt.Errorf("invalid args string %q: %w", m.Args, err)
	}
	return tokens, nil
}

// ConfigFile е за четене от TOML файл (с pointers за optional полета)
type ConfigFile struct {
	DefaultMenu *string             `toml:"default_menu"`
	Verbose     *bool               `toml:"verbose"`
	Menus       map[string]MenuArgs `toml:"menus"`
	Options     map[string]any      `toml:"options"`
}

var globalConfig *Config

// GetUserConfigPath връща пътя до user config
func GetUserConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "xmenu", "config.toml")
}

// GetSystemConfigPath връща пътя до system config
func GetSystemConfigPath() string {
	return "/etc/xmenu/config.toml"
}

// Load зарежда config с merge на defaults + user config
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	// 1. Зареди defaults
	defaultCfg, err := loadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	// 2. Опитай да заредиш user config
	userConfigPath := GetUserConfigPath()
	if _, err := os.Stat(userConfigPath); err == nil {
		userCfg, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load user config: %v\n", err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			globalConfig = defaultCfg
			return globalConfig, nil
		}
		globalConfig = mergeConfigs(defaultCfg, userCfg)
		return globalConfig, nil
	}

	// 3. Опитай да заредиш system config
	systemConfigPath := GetSystemConfigPath()
	if _, err := os.Stat(systemConfigPath); err == nil {
		systemCfg, err := loadConfigFromFile(systemConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load system config: %v\n", err)
			globalConfig = defaultCfg
			return globalConfig, nil
		}
		globalConfig = mergeConfigs(defaultCfg, systemCfg)
		return globalConfig, nil
	}

	// 4. Няма user/system config - използвай defaults
	globalConfig = defaultCfg
	return globalConfig, nil
}

// loadDefaultConfig зарежда вградения default config
func loadDefaultConfig() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFromFile зарежда config от файл
func loadConfigFromFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs merge user config с defaults (user override defaults)
func mergeConfigs(defaultCfg *Config, userCfg *ConfigFile) *Config {
	merged := *defaultCfg

	if userCfg.DefaultMenu != nil && *userCfg.DefaultMenu != "" {
		merged.DefaultMenu = *userCfg.DefaultMenu
	}
	if userCfg.Verbose != nil {
		merged.Verbose = *userCfg.Verbose
	}

	// Merge per-variant args
	if len(userCfg.Menus) > 0 {
		menus := make(map[string]MenuArgs, len(merged.Menus)+len(userCfg.Menus))
		for name, m := range merged.Menus {
			menus[name] = m
		}
		for name, m := range userCfg.Menus {
			menus[name] = m
		}
		merged.Menus = menus
	}

	// Merge default option values key by key
	if len(userCfg.Options) > 0 {
		options := make(map[string]any, len(merged.Options)+len(userCfg.Options))
		for name, v := range merged.Options {
			options[name] = v
		}
		for name, v := range userCfg.Options {
			options[name] = v
		}
		merged.Options = options
	}

	return &merged
}

// Get връща глобалния config (lazy load)
func Get() *Config {
	if globalConfig == nil {
		globalConfig, _ = Load()
	}
	return globalConfig
}

// GetMenuArgs връща конфигурацията за конкретен variant
func (c *Config) GetMenuArgs(name string) MenuArgs {
	if c.Menus == nil {
		return MenuArgs{}
	}
	return c.Menus[name]
}

// InitUserConfig копира default config в user config директорията
func InitUserConfig() error {
	userConfigPath := GetUserConfigPath()
	userConfigDir := filepath.Dir(userConfigPath)

	// Провери дали вече съществува
	if _, err := os.Stat(userConfigPath); err == nil {
		return fmt.Errorf("config already exists: %s", userConfigPath)
	}

	// Създай директорията
	if err := os.MkdirAll(userConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Запиши default config
	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigContent връща съдържанието на default config
func GetDefaultConfigContent() string {
	return defaultConfigData
}
