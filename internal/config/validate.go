package config

import (
	"errors"
	"fmt"
	"strings"
)

func (c *Config) normalize() {
	c.API.Endpoint = strings.TrimSpace(c.API.Endpoint)
	if c.API.Endpoint == "" {
		c.API.Endpoint = defaultEndpoint
	}
	c.API.ResourceID = strings.TrimSpace(c.API.ResourceID)
	if c.API.ResourceID == "" {
		c.API.ResourceID = defaultResourceID
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = defaultAPITimeoutSeconds
	}

	c.Extraction.FFmpegBinary = strings.TrimSpace(c.Extraction.FFmpegBinary)
	if c.Extraction.FFmpegBinary == "" {
		c.Extraction.FFmpegBinary = defaultFFmpegBinary
	}
	c.Extraction.Format = strings.ToLower(strings.TrimSpace(c.Extraction.Format))
	if c.Extraction.Format == "" {
		c.Extraction.Format = defaultExtractionFormat
	}
	if c.Extraction.TimeoutSeconds <= 0 {
		c.Extraction.TimeoutSeconds = defaultExtractionTimeoutSeconds
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}

// Validate ensures the configuration is usable. Credentials are deliberately
// not validated here: they may still arrive from flags or the environment and
// are checked at the point of use.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.API.Endpoint, "http://") && !strings.HasPrefix(c.API.Endpoint, "https://") {
		return fmt.Errorf("api.endpoint must be an http(s) URL, got %q", c.API.Endpoint)
	}
	switch c.Extraction.Format {
	case "mp3", "wav":
	default:
		return fmt.Errorf("extraction.format must be mp3 or wav, got %q", c.Extraction.Format)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return errors.New("logging.format must be console or json")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	return nil
}
