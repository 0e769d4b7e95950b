package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config interface {
	EnvConfig
	APIConfig
	MockAPIConfig
}

type EnvConfig interface {
	GetAppName() string
	GetDataFolder() string
	GetCredentialsPath() string
	GetLogLevel() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	API
	MockAPI
}

// New returns the configuration backed by environment variables only
func New() Config {
	return mainConfig{}
}

// NewFromFile layers a YAML file underneath the environment variables.
// Environment variables always win; the file only replaces the built-in defaults.
func NewFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "[NewFromFile] reading config file")
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrap(err, "[NewFromFile] parsing config file")
	}

	fileValues = values
	return mainConfig{}, nil
}
