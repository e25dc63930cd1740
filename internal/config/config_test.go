// Ruthwik | 2026
// config_test.go

package config

import (
	"testing"
)

func TestLoadFailureDoesNotLatch(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for a missing config file")
	}

	// The failed first call must not be cached as a nil config.
	loaded, err := Load("testdata/does-not-exist.yaml")
	if err == nil {
		t.Fatal("second Load after a failure returned no error")
	}
	if loaded != nil {
		t.Fatal("second Load returned a config despite the error")
	}
}

func TestEnvKeyReplacer(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"DATABASE_URL", "database.url"},
		{"REDIS_URL", "redis.url"},
		{"JWT_SECRET", "jwt.secret"},
		{"CLOUDINARY_API_SECRET", "cloudinary.api_secret"},
		{"UNRELATED_VAR", ""},
	}

	for _, tt := range tests {
		if got := envKeyReplacer(tt.env); got != tt.want {
			t.Errorf("envKeyReplacer(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestServerAddress(t *testing.T) {
	s := ServerConfig{Host: "0.0.0.0", Port: 8080}
	if got := s.Address(); got != "0.0.0.0:8080" {
		t.Errorf("Address() = %q, want %q", got, "0.0.0.0:8080")
	}
}
