package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/paradesk-io/paradesk-go/internal/constants"
)

// Config is the persisted CLI configuration.
type Config struct {
	Host       string `json:"host"                  yaml:"host"`
	Instance   int64  `json:"instance"              yaml:"instance"`
	Department int64  `json:"department"            yaml:"department"`
	Token      string `json:"token,omitempty"       yaml:"token,omitempty"`
	Output     string `json:"output,omitempty"      yaml:"output,omitempty"`

	// AutoRetry turns on retries for intermittent server faults
	// ("default" or "long-running"; empty disables).
	AutoRetry string `json:"auto_retry,omitempty" yaml:"auto_retry,omitempty"`

	// CallSpacing is the minimum gap between calls to the instance.
	CallSpacing time.Duration `json:"call_spacing,omitempty" yaml:"call_spacing,omitempty"`
}

// loadConfig assembles the effective configuration from viper, which
// already merged the config file, environment, and flags.
func loadConfig() *Config {
	return &Config{
		Host:        viper.GetString("host"),
		Instance:    viper.GetInt64("instance"),
		Department:  viper.GetInt64("department"),
		Token:       viper.GetString("token"),
		Output:      viper.GetString("output"),
		AutoRetry:   viper.GetString("auto_retry"),
		CallSpacing: viper.GetDuration("call_spacing"),
	}
}

// configFilePath resolves the config file to write: the explicit --config
// path when given, otherwise ~/.paradesk/config.yml.
func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, ".paradesk", "config.yml"), nil
}

// saveConfig writes the configuration as YAML, creating the directory as
// needed. The file is written owner-only; it carries the API token.
func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
