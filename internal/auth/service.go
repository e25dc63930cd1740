// Ruthwik | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ruthwik2/storefront-admin/internal/core"
	"github.com/ruthwik2/storefront-admin/internal/middleware"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
)

type AdminInfo struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// AdminProvider is the credential store contract the gate relies on.
// The admin package implements it against Postgres.
type AdminProvider interface {
	GetByEmail(ctx context.Context, email string) (*AdminInfo, error)
	GetByID(ctx context.Context, id string) (*AdminInfo, error)
	Create(ctx context.Context, email, plaintextPassword string) (*AdminInfo, error)
}

type Service struct {
	provider AdminProvider
	jwt      *TokenManager
}

func NewService(provider AdminProvider, jwt *TokenManager) *Service {
	return &Service{
		provider: provider,
		jwt:      jwt,
	}
}

// Login validates credentials and issues a session token. The returned
// error for an unknown email and a wrong password is identical, and a
// dummy hash verification runs in the unknown-email path so both take
// the same time.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	admin, err := s.provider.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(
		req.Password,
		&admin.PasswordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return nil, ErrInvalidCredentials
	}

	return s.createAuthResponse(admin)
}

// Register creates a new administrator and immediately authenticates
// them. The role is always the admin enumeration value; no other role
// is assignable through this path.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	admin, err := s.provider.Create(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	return s.createAuthResponse(admin)
}

func (s *Service) GetCurrentAdmin(
	ctx context.Context,
	adminID string,
) (*AdminResponse, error) {
	admin, err := s.provider.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	resp := toAdminResponse(admin)
	return &resp, nil
}

func (s *Service) createAuthResponse(admin *AdminInfo) (*AuthResponse, error) {
	token, err := s.jwt.Issue(middleware.TokenClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		Role:    admin.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResponse{
		Token: token,
		User:  toAdminResponse(admin),
	}, nil
}

func toAdminResponse(admin *AdminInfo) AdminResponse {
	return AdminResponse{
		ID:        admin.ID,
		Email:     admin.Email,
		Role:      admin.Role,
		CreatedAt: admin.CreatedAt,
	}
}
