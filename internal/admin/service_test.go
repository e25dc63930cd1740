// Ruthwik | 2026
// service_test.go

package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ruthwik2/storefront-admin/internal/core"
)

// fakeRepository is an in-memory Repository keyed by id.
type fakeRepository struct {
	admins map[string]*Admin
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{admins: make(map[string]*Admin)}
}

func (f *fakeRepository) Create(_ context.Context, admin *Admin) error {
	for _, existing := range f.admins {
		if existing.Email == admin.Email {
			return fmt.Errorf("create admin: %w", core.ErrDuplicateKey)
		}
	}

	stored := *admin
	stored.CreatedAt = time.Now().UTC()
	f.admins[admin.ID] = &stored
	admin.CreatedAt = stored.CreatedAt
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, fmt.Errorf("get admin: %w", core.ErrNotFound)
	}
	return admin, nil
}

func (f *fakeRepository) GetByEmail(
	_ context.Context,
	email string,
) (*Admin, error) {
	for _, admin := range f.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return nil, fmt.Errorf("get admin by email: %w", core.ErrNotFound)
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.admins[id]; !ok {
		return fmt.Errorf("delete admin: %w", core.ErrNotFound)
	}
	delete(f.admins, id)
	return nil
}

func (f *fakeRepository) List(_ context.Context) ([]Admin, error) {
	admins := make([]Admin, 0, len(f.admins))
	for _, admin := range f.admins {
		admins = append(admins, *admin)
	}
	return admins, nil
}

func (f *fakeRepository) ExistsByEmail(
	_ context.Context,
	email string,
) (bool, error) {
	for _, admin := range f.admins {
		if admin.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateNormalizesAndHashes(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	info, err := svc.Create(context.Background(), "Admin@X.Com", "secret1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if info.Email != "admin@x.com" {
		t.Errorf("Email = %q, want lowercased %q", info.Email, "admin@x.com")
	}
	if info.Role != RoleAdmin {
		t.Errorf("Role = %q, want %q", info.Role, RoleAdmin)
	}
	if info.ID == "" {
		t.Error("empty ID")
	}
	if info.PasswordHash == "secret1" || !strings.HasPrefix(info.PasswordHash, "$argon2id$") {
		t.Errorf("password was not hashed: %q", info.PasswordHash)
	}

	valid, err := core.VerifyPassword("secret1", info.PasswordHash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !valid {
		t.Error("stored hash does not verify the original password")
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), "admin@x.com", "secret1"); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := svc.Create(context.Background(), "ADMIN@x.com", "another")
	if !errors.Is(err, core.ErrDuplicateKey) {
		t.Fatalf("Create duplicate error = %v, want ErrDuplicateKey", err)
	}
}

func TestGetByEmailLowercases(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "admin@x.com", "secret1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	info, err := svc.GetByEmail(context.Background(), "ADMIN@X.COM")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if info.ID != created.ID {
		t.Errorf("ID = %q, want %q", info.ID, created.ID)
	}
}

func TestDeleteSelfForbidden(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), "admin@x.com", "secret1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	err = svc.Delete(context.Background(), created.ID, created.ID)
	if !errors.Is(err, core.ErrSelfAction) {
		t.Fatalf("Delete self error = %v, want ErrSelfAction", err)
	}

	// The account survives the refused delete.
	if _, err := svc.GetByID(context.Background(), created.ID); err != nil {
		t.Errorf("account removed by a refused delete: %v", err)
	}
}

func TestDeleteOtherAdmin(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	first, err := svc.Create(context.Background(), "first@x.com", "secret1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(context.Background(), "second@x.com", "secret1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), first.ID, second.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := svc.GetByID(context.Background(), second.ID); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("deleted account still present, err = %v", err)
	}
}

func TestDeleteMissingAdmin(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	err := svc.Delete(context.Background(), "requester", "missing")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Delete missing error = %v, want ErrNotFound", err)
	}
}
