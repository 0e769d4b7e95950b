package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appNameVar         = "APP_NAME"
	folderEnvVar       = "FOLDER"
	credentialsPathVar = "CREDENTIALS_PATH"
	logLevelVar        = "LOG_LEVEL"
	envVar             = "ENV"
)

// fileValues holds values loaded by NewFromFile, keyed by the env var name in lower case
var fileValues = map[string]string{}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Social Client")
}

func (EnvVars) GetDataFolder() string {
	return GetEnv(folderEnvVar, "./data")
}

// GetCredentialsPath is the sqlite file holding the access token, API key and user identity
func (e EnvVars) GetCredentialsPath() string {
	return GetEnv(credentialsPathVar, filepath.Join(e.GetDataFolder(), "credentials.db"))
}

func (EnvVars) GetLogLevel() string {
	return strings.ToLower(GetEnv(logLevelVar, "info"))
}

func (EnvVars) GetEnv() string {
	return GetEnv(envVar, "DEV")
}

// GetEnv returns the environment variable, then the config file value, then the default
func GetEnv(envVar, defaultValue string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}
	if value := fileValues[strings.ToLower(envVar)]; value != "" {
		return value
	}
	return defaultValue
}
