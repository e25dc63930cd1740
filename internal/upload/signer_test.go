// Ruthwik | 2026
// signer_test.go

package upload

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/ruthwik2/storefront-admin/internal/config"
)

func testCloudinaryConfig() config.CloudinaryConfig {
	return config.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key123",
		APISecret: "secret456",
		Folder:    "products",
	}
}

func TestConfigured(t *testing.T) {
	if !NewSigner(testCloudinaryConfig()).Configured() {
		t.Error("full credentials reported as not configured")
	}

	for _, mutate := range []func(*config.CloudinaryConfig){
		func(c *config.CloudinaryConfig) { c.CloudName = "" },
		func(c *config.CloudinaryConfig) { c.APIKey = "" },
		func(c *config.CloudinaryConfig) { c.APISecret = "" },
	} {
		cfg := testCloudinaryConfig()
		mutate(&cfg)
		if NewSigner(cfg).Configured() {
			t.Error("partial credentials reported as configured")
		}
	}
}

func TestSignUnconfigured(t *testing.T) {
	if _, err := NewSigner(config.CloudinaryConfig{}).Sign(); err == nil {
		t.Fatal("Sign succeeded without credentials")
	}
}

func TestSign(t *testing.T) {
	signer := NewSigner(testCloudinaryConfig())

	sig, err := signer.Sign()
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if sig.Signature == "" {
		t.Error("empty signature")
	}
	if sig.CloudName != "demo" || sig.APIKey != "key123" {
		t.Errorf("credentials = %q/%q", sig.CloudName, sig.APIKey)
	}
	if sig.Folder != "products" {
		t.Errorf("Folder = %q, want %q", sig.Folder, "products")
	}

	now := time.Now().Unix()
	if sig.Timestamp < now-5 || sig.Timestamp > now+5 {
		t.Errorf("Timestamp = %d, not near %d", sig.Timestamp, now)
	}

	// The secret itself must never appear in the response payload.
	if sig.Signature == "secret456" {
		t.Error("signature leaks the api secret")
	}
}

func TestSignatureWireKeys(t *testing.T) {
	sig, err := NewSigner(testCloudinaryConfig()).Sign()
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	data, err := json.Marshal(sig)
	if err != nil {
		t.Fatalf("marshal signature: %v", err)
	}

	body := string(data)
	for _, key := range []string{
		`"timestamp"`,
		`"signature"`,
		`"cloudName"`,
		`"apiKey"`,
		`"folder"`,
	} {
		if !strings.Contains(body, key) {
			t.Errorf("payload missing %s key: %s", key, body)
		}
	}

	if strings.Contains(body, "cloud_name") || strings.Contains(body, "api_key") {
		t.Errorf("payload uses snake_case keys: %s", body)
	}
	if strings.Contains(body, "secret456") {
		t.Errorf("payload leaks the api secret: %s", body)
	}
}
