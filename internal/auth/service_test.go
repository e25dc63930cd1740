// Ruthwik | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ruthwik2/storefront-admin/internal/core"
)

// fakeProvider is an in-memory AdminProvider keyed by email.
type fakeProvider struct {
	admins map[string]*AdminInfo
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{admins: make(map[string]*AdminInfo)}
}

func (f *fakeProvider) add(t *testing.T, email, password string) *AdminInfo {
	t.Helper()

	hash, err := core.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	admin := &AdminInfo{
		ID:           fmt.Sprintf("admin-%d", len(f.admins)+1),
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
	}
	f.admins[email] = admin
	return admin
}

func (f *fakeProvider) GetByEmail(
	_ context.Context,
	email string,
) (*AdminInfo, error) {
	admin, ok := f.admins[strings.ToLower(email)]
	if !ok {
		return nil, core.ErrNotFound
	}
	return admin, nil
}

func (f *fakeProvider) GetByID(
	_ context.Context,
	id string,
) (*AdminInfo, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeProvider) Create(
	_ context.Context,
	email, plaintextPassword string,
) (*AdminInfo, error) {
	email = strings.ToLower(email)
	if _, ok := f.admins[email]; ok {
		return nil, core.ErrDuplicateKey
	}

	hash, err := core.HashPassword(plaintextPassword)
	if err != nil {
		return nil, err
	}

	admin := &AdminInfo{
		ID:           fmt.Sprintf("admin-%d", len(f.admins)+1),
		Email:        email,
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    time.Now().UTC(),
	}
	f.admins[email] = admin
	return admin, nil
}

func newTestService(t *testing.T, provider AdminProvider) *Service {
	t.Helper()

	manager, err := NewTokenManager(testJWTConfig())
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}

	return NewService(provider, manager)
}

func TestLoginSuccess(t *testing.T) {
	provider := newFakeProvider()
	provider.add(t, "admin@x.com", "secret1")
	svc := newTestService(t, provider)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if resp.Token == "" {
		t.Fatal("empty token")
	}
	if resp.User.Email != "admin@x.com" {
		t.Errorf("Email = %q, want %q", resp.User.Email, "admin@x.com")
	}
	if resp.User.Role != "admin" {
		t.Errorf("Role = %q, want %q", resp.User.Role, "admin")
	}
}

func TestLoginTokenCarriesIdentity(t *testing.T) {
	provider := newFakeProvider()
	admin := provider.add(t, "admin@x.com", "secret1")
	svc := newTestService(t, provider)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	claims, err := svc.jwt.Verify(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.AdminID != admin.ID {
		t.Errorf("AdminID = %q, want %q", claims.AdminID, admin.ID)
	}
	if claims.Email != admin.Email {
		t.Errorf("Email = %q, want %q", claims.Email, admin.Email)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	provider := newFakeProvider()
	provider.add(t, "admin@x.com", "secret1")
	svc := newTestService(t, provider)

	_, wrongPassword := svc.Login(context.Background(), LoginRequest{
		Email:    "admin@x.com",
		Password: "wrong",
	})
	_, unknownEmail := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@x.com",
		Password: "secret1",
	})

	if !errors.Is(wrongPassword, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", wrongPassword)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Error("the two failure modes produce different errors")
	}
}

func TestRegisterSuccess(t *testing.T) {
	provider := newFakeProvider()
	svc := newTestService(t, provider)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:           "new@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if resp.Token == "" {
		t.Fatal("empty token")
	}

	// The new account can authenticate immediately.
	if _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "new@x.com",
		Password: "secret1",
	}); err != nil {
		t.Fatalf("Login after Register: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	provider := newFakeProvider()
	provider.add(t, "admin@x.com", "secret1")
	svc := newTestService(t, provider)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:           "admin@x.com",
		Password:        "another",
		ConfirmPassword: "another",
	})
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("Register error = %v, want ErrEmailExists", err)
	}
}

func TestGetCurrentAdmin(t *testing.T) {
	provider := newFakeProvider()
	admin := provider.add(t, "admin@x.com", "secret1")
	svc := newTestService(t, provider)

	resp, err := svc.GetCurrentAdmin(context.Background(), admin.ID)
	if err != nil {
		t.Fatalf("GetCurrentAdmin: %v", err)
	}
	if resp.ID != admin.ID {
		t.Errorf("ID = %q, want %q", resp.ID, admin.ID)
	}

	if _, err := svc.GetCurrentAdmin(context.Background(), "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("GetCurrentAdmin(missing) error = %v, want ErrNotFound", err)
	}
}
