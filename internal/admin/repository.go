// Ruthwik | 2026
// repository.go

package admin

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ruthwik2/storefront-admin/internal/core"
)

type Repository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByID(ctx context.Context, id string) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, admin *Admin) error {
	query := `
		INSERT INTO admins (id, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &admin.CreatedAt, query,
		admin.ID,
		admin.Email,
		admin.PasswordHash,
		admin.Role,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create admin: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create admin: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Admin, error) {
	query := `
		SELECT id, email, password_hash, role, created_at
		FROM admins
		WHERE id = $1`

	var admin Admin
	err := r.db.GetContext(ctx, &admin, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get admin: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}

	return &admin, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*Admin, error) {
	query := `
		SELECT id, email, password_hash, role, created_at
		FROM admins
		WHERE email = $1`

	var admin Admin
	err := r.db.GetContext(ctx, &admin, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get admin by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get admin by email: %w", err)
	}

	return &admin, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM admins WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete admin: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Admin, error) {
	// Projection only: the hash never leaves the store for listings.
	query := `
		SELECT id, email, role, created_at
		FROM admins
		ORDER BY created_at DESC`

	var admins []Admin
	if err := r.db.SelectContext(ctx, &admins, query); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}

	return admins, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
