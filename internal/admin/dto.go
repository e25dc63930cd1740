// Ruthwik | 2026
// dto.go

package admin

import (
	"time"
)

type CreateAdminRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// AdminResponse is the public projection: the password hash is never
// part of any response body.
type AdminResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func ToAdminResponse(a *Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
	}
}

func ToAdminResponseList(admins []Admin) []AdminResponse {
	responses := make([]AdminResponse, 0, len(admins))
	for _, a := range admins {
		responses = append(responses, ToAdminResponse(&a))
	}
	return responses
}
