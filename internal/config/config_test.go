package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitialize(t *testing.T) {
	// Test that initialization doesn't error
	err := Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	if v == nil {
		t.Fatal("viper instance is nil after Initialize()")
	}
}

func TestDefaults(t *testing.T) {
	// Reset viper for test isolation
	err := Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	tests := []struct {
		key      string
		expected interface{}
		getter   func(string) interface{}
	}{
		{"json", false, func(k string) interface{} { return GetBool(k) }},
		{"url", "", func(k string) interface{} { return GetString(k) }},
		{"token", "", func(k string) interface{} { return GetString(k) }},
		{"trace-log", "", func(k string) interface{} { return GetString(k) }},
		{"timeout", 30 * time.Second, func(k string) interface{} { return GetDuration(k) }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := tt.getter(tt.key)
			if got != tt.expected {
				t.Errorf("GetXXX(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestEnvironmentBinding(t *testing.T) {
	// Test environment variable binding
	tests := []struct {
		envVar   string
		key      string
		value    string
		expected interface{}
		getter   func(string) interface{}
	}{
		{"JSOAP_JSON", "json", "true", true, func(k string) interface{} { return GetBool(k) }},
		{"JSOAP_URL", "url", "https://tracker.example.com", "https://tracker.example.com", func(k string) interface{} { return GetString(k) }},
		{"JSOAP_TOKEN", "token", "sekrit", "sekrit", func(k string) interface{} { return GetString(k) }},
		{"JSOAP_TRACE_LOG", "trace-log", "/tmp/trace.log", "/tmp/trace.log", func(k string) interface{} { return GetString(k) }},
		{"JSOAP_TIMEOUT", "timeout", "10s", 10 * time.Second, func(k string) interface{} { return GetDuration(k) }},
		{"JIRA_URL", "url", "https://other.example.com", "https://other.example.com", func(k string) interface{} { return GetString(k) }},
		{"JIRA_TOKEN", "token", "ambient", "ambient", func(k string) interface{} { return GetString(k) }},
	}

	for _, tt := range tests {
		t.Run(tt.envVar, func(t *testing.T) {
			// Set environment variable
			oldValue := os.Getenv(tt.envVar)
			_ = os.Setenv(tt.envVar, tt.value)
			defer os.Setenv(tt.envVar, oldValue)

			// Re-initialize viper to pick up env var
			err := Initialize()
			if err != nil {
				t.Fatalf("Initialize() returned error: %v", err)
			}

			got := tt.getter(tt.key)
			if got != tt.expected {
				t.Errorf("GetXXX(%q) with %s=%s = %v, want %v", tt.key, tt.envVar, tt.value, got, tt.expected)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	// Create a temporary directory with a .jsoap config
	tmpDir := t.TempDir()

	configContent := `
json: true
url: https://tracker.example.com
token: filetoken
timeout: 15s
`
	jsoapDir := filepath.Join(tmpDir, ".jsoap")
	if err := os.MkdirAll(jsoapDir, 0750); err != nil {
		t.Fatalf("failed to create .jsoap directory: %v", err)
	}

	configPath := filepath.Join(jsoapDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	// Change to tmp directory so config file is discovered
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(origDir)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}

	// Initialize viper
	err = Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	// Test that config file values are loaded
	if got := GetBool("json"); got != true {
		t.Errorf("GetBool(json) = %v, want true", got)
	}

	if got := GetString("url"); got != "https://tracker.example.com" {
		t.Errorf("GetString(url) = %q, want tracker URL", got)
	}

	if got := GetString("token"); got != "filetoken" {
		t.Errorf("GetString(token) = %q, want \"filetoken\"", got)
	}

	if got := GetDuration("timeout"); got != 15*time.Second {
		t.Errorf("GetDuration(timeout) = %v, want 15s", got)
	}
}

func TestConfigPrecedence(t *testing.T) {
	// Create a temporary directory for config file
	tmpDir := t.TempDir()

	// Create a config file with json: false
	configContent := `json: false`
	jsoapDir := filepath.Join(tmpDir, ".jsoap")
	if err := os.MkdirAll(jsoapDir, 0750); err != nil {
		t.Fatalf("failed to create .jsoap directory: %v", err)
	}

	configPath := filepath.Join(jsoapDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	// Change to tmp directory
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	defer os.Chdir(origDir)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to change directory: %v", err)
	}

	// Test 1: Config file value (json: false)
	err = Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	if got := GetBool("json"); got != false {
		t.Errorf("GetBool(json) from config file = %v, want false", got)
	}

	// Test 2: Environment variable overrides config file
	_ = os.Setenv("JSOAP_JSON", "true")
	defer func() { _ = os.Unsetenv("JSOAP_JSON") }()

	err = Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	if got := GetBool("json"); got != true {
		t.Errorf("GetBool(json) with env var = %v, want true (env should override config)", got)
	}
}

func TestSetAndGet(t *testing.T) {
	err := Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	// Test Set and Get
	Set("test-key", "test-value")
	if got := GetString("test-key"); got != "test-value" {
		t.Errorf("GetString(test-key) = %q, want \"test-value\"", got)
	}

	Set("test-bool", true)
	if got := GetBool("test-bool"); got != true {
		t.Errorf("GetBool(test-bool) = %v, want true", got)
	}

	Set("test-int", 42)
	if got := GetInt("test-int"); got != 42 {
		t.Errorf("GetInt(test-int) = %d, want 42", got)
	}
}

func TestAllSettings(t *testing.T) {
	err := Initialize()
	if err != nil {
		t.Fatalf("Initialize() returned error: %v", err)
	}

	Set("custom-key", "custom-value")

	settings := AllSettings()
	if settings == nil {
		t.Fatal("AllSettings() returned nil")
	}

	// Check that our custom key is in the settings
	if val, ok := settings["custom-key"]; !ok || val != "custom-value" {
		t.Errorf("AllSettings() missing or incorrect custom-key: got %v", val)
	}
}
