// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultSite is used when ATLASSIAN_SITE is not set.
const DefaultSite = "yoursite.atlassian.net"

// Config holds all configuration parameters for the application.
type Config struct {
	Atlassian AtlassianConfig
}

// AtlassianConfig holds the credentials and site for the Jira REST API.
type AtlassianConfig struct {
	Email    string
	APIToken string
	Site     string
}

// LoadConfig initializes and loads configuration from environment variables.
// It fails before any network call when the email or API token is missing.
func LoadConfig() (*Config, error) {
	// Initialize Viper for environment variables
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	v.BindEnv("atlassian.email", "ATLASSIAN_EMAIL")
	v.BindEnv("atlassian.api.token", "ATLASSIAN_API_TOKEN")
	v.BindEnv("atlassian.site", "ATLASSIAN_SITE")

	config := &Config{
		Atlassian: AtlassianConfig{
			Email:    v.GetString("atlassian.email"),
			APIToken: v.GetString("atlassian.api.token"),
			Site:     NormalizeSite(v.GetString("atlassian.site")),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// NormalizeSite reduces a user-supplied site value to a bare hostname,
// stripping an http(s) scheme and any trailing slash. An empty value falls
// back to DefaultSite.
func NormalizeSite(site string) string {
	if site == "" {
		return DefaultSite
	}
	site = strings.TrimPrefix(site, "https://")
	site = strings.TrimPrefix(site, "http://")
	return strings.TrimSuffix(site, "/")
}

// validateConfig ensures that all required configuration values are provided.
func validateConfig(config *Config) error {
	var missingVars []string

	if config.Atlassian.Email == "" {
		missingVars = append(missingVars, "ATLASSIAN_EMAIL")
	}
	if config.Atlassian.APIToken == "" {
		missingVars = append(missingVars, "ATLASSIAN_API_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	return nil
}
