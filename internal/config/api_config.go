package config

import "time"

type APIConfig interface {
	GetAPIBaseURL() string
	GetAPIKeyHeader() string
	GetRequestTimeout() time.Duration
	GetProfilePostsLimit() int
}

type API struct{}

var _ APIConfig = API{}

func (API) GetAPIBaseURL() string {
	return GetEnv("API_BASE_URL", "https://v2.api.noroff.dev")
}

func (API) GetAPIKeyHeader() string {
	return GetEnv("API_KEY_HEADER", "X-Noroff-API-Key")
}

func (API) GetRequestTimeout() time.Duration {
	d, err := time.ParseDuration(GetEnv("REQUEST_TIMEOUT", "15s"))
	if err != nil {
		return 15 * time.Second
	}
	return d
}

func (API) GetProfilePostsLimit() int {
	return 20
}
