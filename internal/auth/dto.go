// Ruthwik | 2026
// dto.go

package auth

import (
	"time"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=128"`
}

type RegisterRequest struct {
	Email           string `json:"email"            validate:"required,email,max=255"`
	Password        string `json:"password"         validate:"required,min=6,max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// AdminResponse is the public projection of an administrator; the
// password hash never leaves the service.
type AdminResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is the login/register payload: the token and the user
// projection sit at the top level of the body, beside the success
// flag, not under a data key.
type AuthResponse struct {
	Token string        `json:"token"`
	User  AdminResponse `json:"user"`
}
