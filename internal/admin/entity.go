// Ruthwik | 2026
// entity.go

package admin

import (
	"time"
)

type Admin struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

const RoleAdmin = "admin"

func (a *Admin) IsAdmin() bool {
	return a.Role == RoleAdmin
}
