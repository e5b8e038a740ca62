package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	ConfigFileName = "config"
	ConfigFileType = "yaml"
	ArchaidDirName = ".archaid"
)

var config *Config

// Config holds the application configuration
type Config struct {
	AI     AIConfig     `mapstructure:"ai"`
	Run    RunConfig    `mapstructure:"run"`
	Safety SafetyConfig `mapstructure:"safety"`
}

// AIConfig holds translator-related configuration
type AIConfig struct {
	Provider string `mapstructure:"provider"`
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	BaseURL  string `mapstructure:"base_url"`
	Timeout  int    `mapstructure:"timeout"`
}

// RunConfig holds the default execution flags. CLI flags override these
// per invocation; the merged result is read-only afterwards.
type RunConfig struct {
	Mode        string `mapstructure:"mode"` // "suggest" | "apply"
	PreferParu  bool   `mapstructure:"prefer_paru"`
	NoSudo      bool   `mapstructure:"no_sudo"`
	Offline     bool   `mapstructure:"offline"`
	AutoConfirm bool   `mapstructure:"auto_confirm"`
	Verbose     bool   `mapstructure:"verbose"`
	TimeoutSecs int    `mapstructure:"timeout"`
}

// SafetyConfig extends the built-in safety tables. Patterns can only be
// added here, never removed.
type SafetyConfig struct {
	ExtraForbidden []string `mapstructure:"extra_forbidden"`
}

// GetConfigDir returns the archaid config directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ArchaidDirName), nil
}

// InitConfig initializes the configuration
func InitConfig() (*Config, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(configDir)

	// Translator defaults
	v.SetDefault("ai.provider", "openai")
	v.SetDefault("ai.model", "gpt-4o-mini")
	v.SetDefault("ai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ai.timeout", 30)

	// Run defaults: suggest-only, all mutation explicitly opt-in
	v.SetDefault("run.mode", "suggest")
	v.SetDefault("run.prefer_paru", false)
	v.SetDefault("run.no_sudo", false)
	v.SetDefault("run.offline", false)
	v.SetDefault("run.auto_confirm", false)
	v.SetDefault("run.verbose", false)
	v.SetDefault("run.timeout", 300)

	v.SetDefault("safety.extra_forbidden", []string{})

	// Read config file (ignore if not exists)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config not found, will run with defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config = &cfg
	return config, nil
}

// GetConfig returns the loaded config
func GetConfig() *Config {
	return config
}

// SaveConfig saves the current config to file
func SaveConfig(cfg *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType(ConfigFileType)
	v.AddConfigPath(configDir)

	v.Set("ai.provider", cfg.AI.Provider)
	v.Set("ai.api_key", cfg.AI.APIKey)
	v.Set("ai.model", cfg.AI.Model)
	v.Set("ai.base_url", cfg.AI.BaseURL)
	v.Set("ai.timeout", cfg.AI.Timeout)

	v.Set("run.mode", cfg.Run.Mode)
	v.Set("run.prefer_paru", cfg.Run.PreferParu)
	v.Set("run.no_sudo", cfg.Run.NoSudo)
	v.Set("run.offline", cfg.Run.Offline)
	v.Set("run.auto_confirm", cfg.Run.AutoConfirm)
	v.Set("run.verbose", cfg.Run.Verbose)
	v.Set("run.timeout", cfg.Run.TimeoutSecs)

	v.Set("safety.extra_forbidden", cfg.Safety.ExtraForbidden)

	configPath := filepath.Join(configDir, ConfigFileName+"."+ConfigFileType)
	return v.WriteConfigAs(configPath)
}
