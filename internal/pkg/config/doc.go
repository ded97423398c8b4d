// Package config provides functionality for loading and validating
// application configuration. Settings are read from a YAML file with
// environment variable overrides and validated before use.
package config
