package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

// Initialize sets up the viper configuration singleton
// Should be called once at application startup
func Initialize() error {
	v = viper.New()

	// Set config file name and type
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config search paths (in order of precedence)
	// 1. Walk up from CWD to find a project .jsoap/ directory
	//    This allows commands to work from subdirectories
	cwd, err := os.Getwd()
	if err == nil {
		for dir := cwd; dir != filepath.Dir(dir); dir = filepath.Dir(dir) {
			jsoapDir := filepath.Join(dir, ".jsoap")
			configPath := filepath.Join(jsoapDir, "config.yaml")
			if _, err := os.Stat(configPath); err == nil {
				v.AddConfigPath(jsoapDir)
				break
			}
			if info, err := os.Stat(jsoapDir); err == nil && info.IsDir() {
				v.AddConfigPath(jsoapDir)
				break
			}
		}
	}

	// 2. User config directory (~/.config/jsoap/)
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "jsoap"))
	}

	// 3. Home directory (~/.jsoap/)
	if homeDir, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".jsoap"))
	}

	// Automatic environment variable binding
	// Environment variables take precedence over config file
	// E.g., JSOAP_URL, JSOAP_TOKEN, JSOAP_JSON, JSOAP_TRACE_LOG
	v.SetEnvPrefix("JSOAP")

	// Replace hyphens and dots with underscores for env var mapping
	// This allows JSOAP_TRACE_LOG to map to "trace-log"
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Set defaults for all settings
	v.SetDefault("url", "")
	v.SetDefault("token", "")
	v.SetDefault("json", false)
	v.SetDefault("timeout", "30s")
	v.SetDefault("trace-log", "")

	// Additional environment variables (not prefixed with JSOAP_)
	// These are the ambient names other tooling already exports
	_ = v.BindEnv("url", "JIRA_URL")
	_ = v.BindEnv("token", "JIRA_TOKEN")

	// Read config file if it exists (don't error if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found - this is ok, we'll use defaults
	}

	return nil
}

// GetString retrieves a string configuration value
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetBool retrieves a boolean configuration value
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetInt retrieves an integer configuration value
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetDuration retrieves a duration configuration value
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a configuration value
func Set(key string, value interface{}) {
	if v != nil {
		v.Set(key, value)
	}
}

// AllSettings returns all configuration settings as a map
func AllSettings() map[string]interface{} {
	if v == nil {
		return map[string]interface{}{}
	}
	return v.AllSettings()
}
