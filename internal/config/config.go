package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/scriptlog/internal/errors"
	"github.com/Aman-CERP/scriptlog/internal/logging"
)

// DefaultRetentionDays is the retention window when none is configured.
const DefaultRetentionDays = 90

// Config is the scriptlog configuration: the options that select where a
// caller's log files live and how long they are kept.
type Config struct {
	Version int `yaml:"version" json:"version"`

	// ComponentName is embedded in log file names to tell callers apart.
	ComponentName string `yaml:"component_name" json:"component_name"`

	// BaseDirectory is the root under which Logs/ is created.
	// Empty means the caller's own directory.
	BaseDirectory string `yaml:"base_directory" json:"base_directory"`

	// RetentionDays is the age in days after which log files are pruned.
	// Zero prunes everything, so it is only taken from files when set explicitly.
	RetentionDays int `yaml:"retention_days" json:"retention_days"`

	// Host overrides the host identifier. Empty means the machine's host name.
	Host string `yaml:"host" json:"host"`

	// NoColor disables highlighted console output.
	NoColor bool `yaml:"no_color" json:"no_color"`
}

// fileConfig is the on-disk form. Pointers tell an explicit zero/false
// apart from an absent key.
type fileConfig struct {
	Version       int    `yaml:"version"`
	ComponentName string `yaml:"component_name"`
	BaseDirectory string `yaml:"base_directory"`
	RetentionDays *int   `yaml:"retention_days"`
	Host          string `yaml:"host"`
	NoColor       *bool  `yaml:"no_color"`
}

// NewConfig creates a new Config with defaults.
func NewConfig() *Config {
	return &Config{
		Version:       1,
		RetentionDays: DefaultRetentionDays,
	}
}

// GetUserConfigPath returns the path to the user/global configuration file.
// It follows XDG Base Directory specification:
//   - $XDG_CONFIG_HOME/scriptlog/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/scriptlog/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "scriptlog", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "scriptlog", "config.yaml")
	}
	return filepath.Join(home, ".config", "scriptlog", "config.yaml")
}

// UserConfigExists returns true if the user configuration file exists.
func UserConfigExists() bool {
	return fileExists(GetUserConfigPath())
}

// FindProjectConfig returns the project config file in dir
// (.scriptlog.yaml, then .scriptlog.yml), or "" if there is none.
func FindProjectConfig(dir string) string {
	for _, name := range []string{".scriptlog.yaml", ".scriptlog.yml"} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// Load loads configuration for a working directory.
// It applies configuration in order of increasing precedence:
//  1. Hardcoded defaults
//  2. User/global config (~/.config/scriptlog/config.yaml)
//  3. Project config (.scriptlog.yaml in dir)
//  4. Environment variables (SCRIPTLOG_*)
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if UserConfigExists() {
		if err := cfg.LoadFile(GetUserConfigPath()); err != nil {
			return nil, fmt.Errorf("failed to load user config: %w", err)
		}
	}

	if path := FindProjectConfig(dir); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadFile merges the keys set in a YAML file into c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.New(errors.ErrCodeConfigParse, "failed to read config file", err).
			WithDetail("path", path)
	}

	var parsed fileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return errors.New(errors.ErrCodeConfigParse, "failed to parse config file", err).
			WithDetail("path", path)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges values set in other into c.
func (c *Config) mergeWith(other *fileConfig) {
	if other.Version != 0 {
		c.Version = other.Version
	}
	if other.ComponentName != "" {
		c.ComponentName = other.ComponentName
	}
	if other.BaseDirectory != "" {
		c.BaseDirectory = other.BaseDirectory
	}
	if other.RetentionDays != nil {
		c.RetentionDays = *other.RetentionDays
	}
	if other.Host != "" {
		c.Host = other.Host
	}
	if other.NoColor != nil {
		c.NoColor = *other.NoColor
	}
}

// applyEnvOverrides applies SCRIPTLOG_* environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SCRIPTLOG_COMPONENT"); v != "" {
		c.ComponentName = v
	}
	if v := os.Getenv("SCRIPTLOG_BASE_DIR"); v != "" {
		c.BaseDirectory = v
	}
	if v := os.Getenv("SCRIPTLOG_RETENTION_DAYS"); v != "" {
		days, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.ConfigError("SCRIPTLOG_RETENTION_DAYS must be an integer", err).
				WithDetail("value", v)
		}
		c.RetentionDays = days
	}
	if v := os.Getenv("SCRIPTLOG_HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("SCRIPTLOG_NO_COLOR"); v != "" {
		c.NoColor = strings.ToLower(v) == "true" || v == "1"
	}
	return nil
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.RetentionDays < 0 {
		return errors.ConfigError(fmt.Sprintf("retention_days must be zero or positive, got %d", c.RetentionDays), nil)
	}
	if err := logging.ValidateName("component", c.ComponentName); err != nil {
		return errors.ConfigError(fmt.Sprintf("component_name %q is not a valid file name part", c.ComponentName), err)
	}
	if err := logging.ValidateName("host", c.Host); err != nil {
		return errors.ConfigError(fmt.Sprintf("host %q is not a valid file name part", c.Host), err)
	}
	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
