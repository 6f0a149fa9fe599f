package config

import (
	"os"
	"strings"
)

// Environment variables consulted when neither flags nor the config file
// supply credentials.
const (
	EnvAppKey      = "VOLCENGINE_APP_ID"
	EnvAccessToken = "VOLCENGINE_ACCESS_TOKEN"
)

// Credentials resolves the application key and access token with the
// precedence explicit flag value, then config file, then environment. Either
// value may come from a different layer than the other. Empty results mean no
// usable credentials; the client rejects the call at the point of use.
func (c *Config) Credentials(flagAppKey, flagAccessToken string) (appKey, accessToken string) {
	appKey = firstNonEmpty(flagAppKey, c.Auth.AppKey, os.Getenv(EnvAppKey))
	accessToken = firstNonEmpty(flagAccessToken, c.Auth.AccessToken, os.Getenv(EnvAccessToken))
	return appKey, accessToken
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
