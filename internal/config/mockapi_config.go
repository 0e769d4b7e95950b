package config

import (
	"fmt"
	"strconv"
	"time"
)

type MockAPIConfig interface {
	GetMockPort() string
	GetJWTSecret() string
	GetAccessTokenExpiry() time.Duration
	GetAuthRateLimit() (rps float64, burst int)
}

type MockAPI struct{}

var _ MockAPIConfig = MockAPI{}

func (MockAPI) GetMockPort() string {
	port := GetEnv("MOCK_PORT", "8090")
	if port != "" && port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (MockAPI) GetJWTSecret() string {
	return GetEnv("JWT_SECRET", "dev-secret-change-in-production")
}

func (MockAPI) GetAccessTokenExpiry() time.Duration {
	return 24 * time.Hour
}

func (MockAPI) GetAuthRateLimit() (float64, int) {
	rps, err := strconv.ParseFloat(GetEnv("AUTH_RATE_LIMIT", "5"), 64)
	if err != nil || rps <= 0 {
		rps = 5
	}
	return rps, 10
}
