package configs

import (
	"os"
	"testing"
)

// setupTestEnv sets environment overrides on top of the checked-in config file
func setupTestEnv() {
	os.Setenv("APP_DEBUG", "false")
	os.Setenv("APP_ENV", "test")
	os.Setenv("APP_PORT", "8080")
	os.Setenv("POSTGRES_ENABLED", "false")
	os.Setenv("POSTGRES_HOST", "localhost")
	os.Setenv("POSTGRES_PORT", "5432")
	os.Setenv("POSTGRES_USERNAME", "test")
	os.Setenv("POSTGRES_PASSWORD", "test")
	os.Setenv("POSTGRES_DATABASE", "test")
	os.Setenv("POSTGRES_SSLMODE", "false")
	os.Setenv("REDIS_ADDR", "localhost:6379")
	os.Setenv("SESSION_BACKEND", "memory")
	os.Setenv("SESSION_TIMEOUT_MINUTES", "30")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	os.Unsetenv("APP_DEBUG")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("POSTGRES_ENABLED")
	os.Unsetenv("POSTGRES_HOST")
	os.Unsetenv("POSTGRES_PORT")
	os.Unsetenv("POSTGRES_USERNAME")
	os.Unsetenv("POSTGRES_PASSWORD")
	os.Unsetenv("POSTGRES_DATABASE")
	os.Unsetenv("POSTGRES_SSLMODE")
	os.Unsetenv("REDIS_ADDR")
	os.Unsetenv("SESSION_BACKEND")
	os.Unsetenv("SESSION_TIMEOUT_MINUTES")
}

// TestSessionStructFieldsUnmarshal tests that Session struct fields are properly unmarshaled
func TestSessionStructFieldsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("SESSION_BACKEND", "redis")
	os.Setenv("SESSION_TIMEOUT_MINUTES", "45")

	// Initialize config - using relative path from configs directory
	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Session.Backend != "redis" {
		t.Errorf("Expected Session.Backend to be redis, got %s", cfg.Session.Backend)
	}

	if cfg.Session.TimeoutMinutes != 45 {
		t.Errorf("Expected Session.TimeoutMinutes to be 45, got %d", cfg.Session.TimeoutMinutes)
	}
}

// TestSessionZeroTimeoutRequiresApplicationDefault tests that a zero timeout is passed
// through unchanged; the application layer (protocal/http.go) applies the default
func TestSessionZeroTimeoutRequiresApplicationDefault(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("SESSION_TIMEOUT_MINUTES", "0")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Session.TimeoutMinutes != 0 {
		t.Errorf("Expected Session.TimeoutMinutes to be 0, got %d", cfg.Session.TimeoutMinutes)
	}
}

// TestCitiesPreserveConfiguredOrder tests that the cities list keeps the order
// declared in the config file, because chat options are rendered in that order
func TestCitiesPreserveConfiguredOrder(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")

	cfg := GetViper()

	if len(cfg.Cities) != 2 {
		t.Fatalf("Expected 2 cities, got %d", len(cfg.Cities))
	}

	if cfg.Cities[0].Name != "delhi" {
		t.Errorf("Expected first city to be delhi, got %s", cfg.Cities[0].Name)
	}

	if cfg.Cities[1].Name != "bangalore" {
		t.Errorf("Expected second city to be bangalore, got %s", cfg.Cities[1].Name)
	}

	if len(cfg.Cities[1].Locations) != 4 {
		t.Errorf("Expected 4 bangalore locations, got %d", len(cfg.Cities[1].Locations))
	}
}

// TestChainConfigAccess tests config access via configs.GetViper().Chain
func TestChainConfigAccess(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Chain.Name != "Barbeque Nation" {
		t.Errorf("Expected Chain.Name to be Barbeque Nation, got %s", cfg.Chain.Name)
	}

	if cfg.Chain.KnowledgeFile == "" {
		t.Error("Expected Chain.KnowledgeFile to be set")
	}
}
