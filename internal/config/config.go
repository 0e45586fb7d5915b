// Package config resolves bridge settings from flags, VOID_BRIDGE_* environment
// variables, an optional void-bridge.toml file and defaults, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/void-bridge/internal/logging"
	"github.com/spf13/viper"
)

const (
	StatePathKey    = "state.path"
	LogLevelKey     = "log.level"
	LogFormatKey    = "log.format"
	ResponseTopKey  = "response.top"
	MaxLineBytesKey = "input.max_line_bytes"

	DefaultStatePath    = "server/data/void-state.toml"
	DefaultResponseTop  = 5
	DefaultMaxLineBytes = 16 << 20

	envPrefix  = "VOID_BRIDGE"
	configName = "void-bridge"
	configType = "toml"
)

type Settings struct {
	State    StateSettings    `mapstructure:"state"`
	Log      logging.Config   `mapstructure:"log"`
	Response ResponseSettings `mapstructure:"response"`
	Input    InputSettings    `mapstructure:"input"`
}

type StateSettings struct {
	Path string `mapstructure:"path"`
}

type ResponseSettings struct {
	Top int `mapstructure:"top"`
}

type InputSettings struct {
	MaxLineBytes int `mapstructure:"max_line_bytes"`
}

func SetDefaults(v *viper.Viper) {
	logDefaults := logging.NewDefaultConfig()

	v.SetDefault(StatePathKey, DefaultStatePath)
	v.SetDefault(LogLevelKey, logDefaults.Level)
	v.SetDefault(LogFormatKey, logDefaults.Format)
	v.SetDefault(ResponseTopKey, DefaultResponseTop)
	v.SetDefault(MaxLineBytesKey, DefaultMaxLineBytes)
}

// Load reads settings into v and decodes them. configFile, when set, must
// exist; otherwise void-bridge.toml is looked up in the working directory and
// $HOME/.config/void-bridge, and a missing file is not an error.
func Load(v *viper.Viper, configFile string) (Settings, error) {
	if v == nil {
		v = viper.New()
	}

	SetDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	statePath, err := filepath.Abs(settings.State.Path)
	if err != nil {
		return Settings{}, fmt.Errorf("resolve state path: %w", err)
	}
	settings.State.Path = filepath.Clean(statePath)

	return settings, nil
}

func (s Settings) Validate() error {
	if strings.TrimSpace(s.State.Path) == "" {
		return errors.New("state path is empty")
	}
	if err := s.Log.Validate(); err != nil {
		return fmt.Errorf("log settings: %w", err)
	}
	if s.Response.Top <= 0 {
		return fmt.Errorf("%s must be positive, got %d", ResponseTopKey, s.Response.Top)
	}
	if s.Input.MaxLineBytes <= 0 {
		return fmt.Errorf("%s must be positive, got %d", MaxLineBytesKey, s.Input.MaxLineBytes)
	}
	return nil
}
