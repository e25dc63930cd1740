// Ruthwik | 2026
// service.go

package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ruthwik2/storefront-admin/internal/auth"
	"github.com/ruthwik2/storefront-admin/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create hashes the plaintext password before anything touches the
// store; the plaintext is never persisted or retrievable afterward.
func (s *Service) Create(
	ctx context.Context,
	email, plaintextPassword string,
) (*auth.AdminInfo, error) {
	passwordHash, err := core.HashPassword(plaintextPassword)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &Admin{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
		Role:         RoleAdmin,
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}

	return toAdminInfo(admin), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.AdminInfo, error) {
	admin, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	return toAdminInfo(admin), nil
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.AdminInfo, error) {
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toAdminInfo(admin), nil
}

func (s *Service) List(ctx context.Context) ([]Admin, error) {
	return s.repo.List(ctx)
}

// Delete removes an administrator account. An administrator may never
// delete the account matching their own authenticated identity.
func (s *Service) Delete(ctx context.Context, requesterID, targetID string) error {
	if requesterID == targetID {
		return fmt.Errorf("delete admin: %w", core.ErrSelfAction)
	}

	return s.repo.Delete(ctx, targetID)
}

func toAdminInfo(a *Admin) *auth.AdminInfo {
	return &auth.AdminInfo{
		ID:           a.ID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         a.Role,
		CreatedAt:    a.CreatedAt,
	}
}

var _ auth.AdminProvider = (*Service)(nil)
