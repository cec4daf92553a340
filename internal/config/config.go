package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// EnvPrefix prefixes environment overrides (TALLY_LOG_LEVEL, ...)
	EnvPrefix = "tally"
)

var (
	// ConfigDir is the global configuration directory (~/.tally)
	ConfigDir string

	// ConfigFile is the default configuration file
	ConfigFile string

	// LogFile is the default debug log file
	LogFile string
)

// Config is the user configuration
type Config struct {
	Log LogConfig `mapstructure:"log"`

	// Keybinds maps context -> action -> comma separated keys
	Keybinds map[string]map[string]string `mapstructure:"keybinds"`
}

// LogConfig controls where and how much tally logs
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Initialize sets up the global configuration paths
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".tally")
	ConfigFile = filepath.Join(ConfigDir, "config.yaml")
	LogFile = filepath.Join(ConfigDir, "tally.log")

	return nil
}

// Defaults returns the built-in configuration values
func Defaults() map[string]any {
	return map[string]any{
		"log.file":  "",
		"log.level": "info",
	}
}

// Load reads the configuration. An explicit path must exist; without one,
// config.yaml is looked up in ConfigDir and the working directory and a
// missing file falls back to defaults. TALLY_* environment variables
// override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if ConfigDir != "" {
			v.AddConfigPath(ConfigDir)
		}
		v.AddConfigPath(".tally")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &c, nil
}

// EnsureDir creates ConfigDir if it doesn't exist
func EnsureDir() error {
	if ConfigDir == "" {
		return errors.New("config not initialized")
	}
	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}
	return nil
}
