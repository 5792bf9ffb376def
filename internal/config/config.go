// Package config provides configuration management for prank.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/xvierd/prank-cli/internal/domain"
)

// Config holds all configuration for the prank application.
type Config struct {
	Locale        string             `mapstructure:"locale"`
	Variant       string             `mapstructure:"variant"`
	Mode          string             `mapstructure:"mode"`
	Hours         int                `mapstructure:"hours"`
	Minutes       int                `mapstructure:"minutes"`
	LoopCycle     Duration           `mapstructure:"loop_cycle"`
	FrameInterval Duration           `mapstructure:"frame_interval"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Log           LogConfig          `mapstructure:"log"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// ThemeConfig holds the colors of each screen variant and of the sidebar.
type ThemeConfig struct {
	FailureBackground   string `mapstructure:"failure_background"`
	FailureForeground   string `mapstructure:"failure_foreground"`
	UpdateBackground    string `mapstructure:"update_background"`
	UpdateForeground    string `mapstructure:"update_foreground"`
	AltUpdateBackground string `mapstructure:"alt_update_background"`
	AltUpdateForeground string `mapstructure:"alt_update_foreground"`
	AltUpdateBar        string `mapstructure:"alt_update_bar"`
	AltUpdateTrack      string `mapstructure:"alt_update_track"`
	ColorPanel          string `mapstructure:"color_panel"`
	ColorActive         string `mapstructure:"color_active"`
	ColorHelp           string `mapstructure:"color_help"`
	ColorError          string `mapstructure:"color_error"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		FailureBackground:   "#0078D7",
		FailureForeground:   "#EBF3FB",
		UpdateBackground:    "#0078D7",
		UpdateForeground:    "#EBF3FB",
		AltUpdateBackground: "#000000",
		AltUpdateForeground: "#FFFFFF",
		AltUpdateBar:        "#FFFFFF",
		AltUpdateTrack:      "#3A3A3C",
		ColorPanel:          "#1F2937",
		ColorActive:         "#7C6FE0",
		ColorHelp:           "#95A5A6",
		ColorError:          "#E74C3C",
	}
}

// NotificationConfig holds toast settings.
type NotificationConfig struct {
	Desktop       bool     `mapstructure:"desktop"`
	ToastDuration Duration `mapstructure:"toast_duration"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// Default values shared by DefaultConfig and the viper defaults.
const (
	defaultDataDir       = "~/.prank"
	defaultLoopCycle     = 125 * time.Second
	defaultFrameInterval = 16 * time.Millisecond
	defaultToastDuration = 2 * time.Second
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Mode:          string(domain.ModeLoop),
		LoopCycle:     Duration(defaultLoopCycle),
		FrameInterval: Duration(defaultFrameInterval),
		Notifications: NotificationConfig{
			Desktop:       false,
			ToastDuration: Duration(defaultToastDuration),
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir,
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the default config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from configPath, creating it with defaults
// when it does not exist.
func LoadFrom(configPath string) (*Config, error) {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	dataDir, err := homedir.Expand(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to expand data directory: %w", err)
	}
	cfg.Storage.DataDir = dataDir

	if cfg.Log.File != "" {
		logFile, err := homedir.Expand(cfg.Log.File)
		if err != nil {
			return nil, fmt.Errorf("failed to expand log file: %w", err)
		}
		cfg.Log.File = logFile
	}

	return &cfg, nil
}

// Save saves the configuration to the default config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes cfg to configPath.
func SaveTo(configPath string, cfg *Config) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	v.Set("locale", cfg.Locale)
	v.Set("variant", cfg.Variant)
	v.Set("mode", cfg.Mode)
	v.Set("hours", cfg.Hours)
	v.Set("minutes", cfg.Minutes)
	v.Set("loop_cycle", cfg.LoopCycle.String())
	v.Set("frame_interval", cfg.FrameInterval.String())
	v.Set("notifications.desktop", cfg.Notifications.Desktop)
	v.Set("notifications.toast_duration", cfg.Notifications.ToastDuration.String())
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("theme.failure_background", cfg.Theme.FailureBackground)
	v.Set("theme.failure_foreground", cfg.Theme.FailureForeground)
	v.Set("theme.update_background", cfg.Theme.UpdateBackground)
	v.Set("theme.update_foreground", cfg.Theme.UpdateForeground)
	v.Set("theme.alt_update_background", cfg.Theme.AltUpdateBackground)
	v.Set("theme.alt_update_foreground", cfg.Theme.AltUpdateForeground)
	v.Set("theme.alt_update_bar", cfg.Theme.AltUpdateBar)
	v.Set("theme.alt_update_track", cfg.Theme.AltUpdateTrack)
	v.Set("theme.color_panel", cfg.Theme.ColorPanel)
	v.Set("theme.color_active", cfg.Theme.ColorActive)
	v.Set("theme.color_help", cfg.Theme.ColorHelp)
	v.Set("theme.color_error", cfg.Theme.ColorError)

	return v.WriteConfig()
}

// GetConfigPath returns the path to the config file.
// PRANK_CONFIG overrides the default location.
func GetConfigPath() (string, error) {
	if p := os.Getenv("PRANK_CONFIG"); p != "" {
		return homedir.Expand(p)
	}
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".prank", "config.toml"), nil
}

// GetLogPath returns the log file path, defaulting to prank.log in the data directory.
func GetLogPath(cfg *Config) string {
	path := cfg.Log.File
	if path == "" {
		path = filepath.Join(cfg.Storage.DataDir, "prank.log")
	}
	if expanded, err := homedir.Expand(path); err == nil {
		return expanded
	}
	return path
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("locale", "")
	v.SetDefault("variant", "")
	v.SetDefault("mode", string(domain.ModeLoop))
	v.SetDefault("hours", 0)
	v.SetDefault("minutes", 0)
	v.SetDefault("loop_cycle", defaultLoopCycle.String())
	v.SetDefault("frame_interval", defaultFrameInterval.String())
	v.SetDefault("notifications.desktop", false)
	v.SetDefault("notifications.toast_duration", defaultToastDuration.String())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("storage.data_dir", defaultDataDir)

	// Theme defaults
	defaults := DefaultThemeConfig()
	v.SetDefault("theme.failure_background", defaults.FailureBackground)
	v.SetDefault("theme.failure_foreground", defaults.FailureForeground)
	v.SetDefault("theme.update_background", defaults.UpdateBackground)
	v.SetDefault("theme.update_foreground", defaults.UpdateForeground)
	v.SetDefault("theme.alt_update_background", defaults.AltUpdateBackground)
	v.SetDefault("theme.alt_update_foreground", defaults.AltUpdateForeground)
	v.SetDefault("theme.alt_update_bar", defaults.AltUpdateBar)
	v.SetDefault("theme.alt_update_track", defaults.AltUpdateTrack)
	v.SetDefault("theme.color_panel", defaults.ColorPanel)
	v.SetDefault("theme.color_active", defaults.ColorActive)
	v.SetDefault("theme.color_help", defaults.ColorHelp)
	v.SetDefault("theme.color_error", defaults.ColorError)
}

// ToSettings converts the config into the settings a session starts from.
// An empty variant is returned as "" so the caller can fall back to detection.
func (c *Config) ToSettings() (domain.Settings, error) {
	s := domain.DefaultSettings()
	s.Variant = ""

	if c.Mode != "" {
		m, err := domain.ParseMode(c.Mode)
		if err != nil {
			return s, err
		}
		s.Mode = m
	}
	if strings.TrimSpace(c.Variant) != "" {
		v, err := domain.ParseVariant(c.Variant)
		if err != nil {
			return s, err
		}
		s.Variant = v
	}
	s.SetHour(fmt.Sprint(c.Hours))
	s.SetMinute(fmt.Sprint(c.Minutes))
	s.Locale = c.Locale
	return s, nil
}
