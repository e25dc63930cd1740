// Ruthwik | 2026
// auth_test.go

package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeVerifier struct {
	claims *TokenClaims
	err    error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*TokenClaims, error) {
	return f.claims, f.err
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) (string, string) {
	t.Helper()

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Success {
		t.Error("error response has success=true")
	}
	return body.Error.Code, body.Error.Message
}

func TestAuthenticatorMissingToken(t *testing.T) {
	verifier := &fakeVerifier{claims: &TokenClaims{AdminID: "id"}}
	handler := Authenticator(verifier)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler reached without a token")
		},
	))

	for name, header := range map[string]string{
		"no header":    "",
		"no scheme":    "sometoken",
		"wrong scheme": "Basic sometoken",
		"scheme only":  "Bearer",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			code, _ := decodeErrorBody(t, rec)
			if code != "UNAUTHORIZED" {
				t.Errorf("code = %q, want UNAUTHORIZED", code)
			}
		})
	}
}

func TestAuthenticatorRejectedToken(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("bad signature")}
	handler := Authenticator(verifier)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler reached with a rejected token")
		},
	))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}

	// Expired and malformed tokens share one message; nothing in the
	// response hints at which case it was.
	_, message := decodeErrorBody(t, rec)
	if message != "invalid or expired token" {
		t.Errorf("message = %q, want %q", message, "invalid or expired token")
	}
}

func TestAuthenticatorValidToken(t *testing.T) {
	verifier := &fakeVerifier{claims: &TokenClaims{
		AdminID: "admin-1",
		Email:   "admin@x.com",
		Role:    "admin",
	}}

	var got *TokenClaims
	handler := Authenticator(verifier)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			got = GetClaims(r.Context())

			if GetAdminID(r.Context()) != "admin-1" {
				t.Errorf("GetAdminID = %q", GetAdminID(r.Context()))
			}
			if GetAdminEmail(r.Context()) != "admin@x.com" {
				t.Errorf("GetAdminEmail = %q", GetAdminEmail(r.Context()))
			}
			if GetAdminRole(r.Context()) != "admin" {
				t.Errorf("GetAdminRole = %q", GetAdminRole(r.Context()))
			}
			if !IsAuthenticated(r.Context()) {
				t.Error("IsAuthenticated = false")
			}
			w.WriteHeader(http.StatusOK)
		},
	))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got == nil || got.AdminID != "admin-1" {
		t.Errorf("claims in context = %+v", got)
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name string
		role string
		want int
	}{
		{"no role", "", http.StatusUnauthorized},
		{"wrong role", "viewer", http.StatusForbidden},
		{"admin", "admin", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.role != "" {
				ctx := context.WithValue(req.Context(), AdminRoleKey, tt.role)
				req = req.WithContext(ctx)
			}
			rec := httptest.NewRecorder()

			RequireAdmin(next).ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"empty", "", ""},
		{"bearer", "Bearer abc123", "abc123"},
		{"lowercase scheme", "bearer abc123", "abc123"},
		{"wrong scheme", "Basic abc123", ""},
		{"no token", "Bearer", ""},
		{"padded token", "Bearer  abc123", "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			if got := ExtractToken(req); got != tt.want {
				t.Errorf("ExtractToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
