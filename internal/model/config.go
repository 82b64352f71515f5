package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AppConfig is the top-level application configuration.
type AppConfig struct {
	// Variant selects the dashboard edition ("shop" or "rick").
	Variant Variant `mapstructure:"variant" yaml:"variant"`

	// DataDir is where the two CSV files and the history database live.
	// Defaults to ./data for the shop variant and ./data_rick for rick.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// Theme is the UI color theme name.
	Theme string `mapstructure:"theme" yaml:"theme"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/jewelboard/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "jewelboard", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Variant: VariantShop,
		Theme:   "default",
	}
}

// LoadConfig reads configuration from the given YAML file path using
// Viper, layered under JEWELBOARD_* environment variables. If the file
// does not exist, it returns the defaults.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("variant", string(VariantShop))
	v.SetDefault("theme", "default")

	v.SetEnvPrefix("JEWELBOARD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	switch cfg.Variant {
	case VariantShop, VariantRick:
	default:
		return nil, fmt.Errorf("unknown variant %q in %s", cfg.Variant, path)
	}

	if cfg.DataDir == "" {
		if cfg.Variant == VariantRick {
			cfg.DataDir = "data_rick"
		} else {
			cfg.DataDir = "data"
		}
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("variant", string(cfg.Variant))
	v.Set("data_dir", cfg.DataDir)
	v.Set("theme", cfg.Theme)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}

// CustomFile returns the path of the custom-jobs CSV for this config.
func (c *AppConfig) CustomFile() string {
	if c.Variant == VariantRick {
		return filepath.Join(c.DataDir, "custom_jobs_rick.csv")
	}
	return filepath.Join(c.DataDir, "custom_jobs.csv")
}

// RepairFile returns the path of the repair-jobs CSV for this config.
func (c *AppConfig) RepairFile() string {
	if c.Variant == VariantRick {
		return filepath.Join(c.DataDir, "repair_jobs_rick.csv")
	}
	return filepath.Join(c.DataDir, "repair_jobs.csv")
}

// HistoryFile returns the path of the sqlite change-history database.
func (c *AppConfig) HistoryFile() string {
	return filepath.Join(c.DataDir, "history.db")
}
