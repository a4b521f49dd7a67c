// Package config loads the CLI configuration from file, environment and
// defaults.
package config

import (
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

// Resource kinds the CLI operates on.
const (
	ResourceUser                  = "user"
	ResourceGroup                 = "group"
	ResourceResourceType          = "resource-type"
	ResourceServiceProviderConfig = "service-provider-config"
	ResourceEnterpriseUser        = "enterprise-user"
)

type Config struct {
	Logging LoggingConfig `json:"logging"`
	Decode  DecodeConfig  `json:"decode"`
}

type LoggingConfig struct {
	LogLevel       string        `json:"log_level"`
	LogLevelParsed zerolog.Level `json:"-"`
}

type DecodeConfig struct {
	// Resource is the kind assumed when no --resource flag is given.
	Resource string `json:"resource"`
	// Strict rejects unknown attributes on decode.
	Strict bool `json:"strict"`
}

func NewConfig(configPath string) (*Config, error) {
	file := "config.yaml"
	v := viper.New()

	if configPath != "" {
		exists, err := fileExists(configPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to determine if config file '%s' exists", configPath)
		}

		if !exists {
			return nil, errors.Errorf("config file '%s' doesn't exist", configPath)
		}

		file = configPath
	}

	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetConfigFile(file)
	v.SetEnvPrefix("SCIM2")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults.
	v.SetDefault("logging.log_level", "info")
	v.SetDefault("decode.resource", ResourceUser)
	v.SetDefault("decode.strict", false)

	configExists, err := fileExists(file)
	if err != nil {
		return nil, errors.Wrapf(err, "filesystem error")
	}

	if configExists {
		if err = v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file '%s'", file)
		}
	}

	v.AutomaticEnv()

	cfg := new(Config)

	err = v.UnmarshalExact(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config file")
	}

	if cfg.Logging.LogLevel == "" {
		cfg.Logging.LogLevelParsed = zerolog.InfoLevel
	} else {
		cfg.Logging.LogLevelParsed, err = zerolog.ParseLevel(cfg.Logging.LogLevel)
		if err != nil {
			return nil, errors.Wrapf(err, "logging.log_level failed to parse")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	switch cfg.Decode.Resource {
	case ResourceUser, ResourceGroup, ResourceResourceType,
		ResourceServiceProviderConfig, ResourceEnterpriseUser:
		return nil
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown resource kind '%s'", cfg.Decode.Resource)
	}
}

func fileExists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil
	} else if errors.Is(err, os.ErrNotExist) {
		return false, nil
	} else {
		return false, err
	}
}
