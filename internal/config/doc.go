// Package config loads, normalizes, and validates flashscribe configuration.
//
// It supplies repository defaults, expands tilde paths, reads TOML files, and
// resolves credentials with a fixed precedence: explicit flag values, then the
// config file, then the VOLCENGINE_APP_ID / VOLCENGINE_ACCESS_TOKEN
// environment variables. Obtain settings through this package so downstream
// code receives sanitized values and clear validation errors.
package config
