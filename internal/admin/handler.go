// Ruthwik | 2026
// handler.go

package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ruthwik2/storefront-admin/internal/core"
	"github.com/ruthwik2/storefront-admin/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin/users", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/", h.ListAdmins)
		r.Post("/", h.CreateAdmin)
		r.Delete("/{adminID}", h.DeleteAdmin)
	})
}

func (h *Handler) ListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToAdminResponseList(admins))
}

// CreateAdmin is the admin-management creation path: the caller is
// already authenticated as a different administrator, so the created
// account is returned without a token.
func (h *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	info, err := h.service.Create(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			core.JSONError(w, core.DuplicateError("email"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, AdminResponse{
		ID:        info.ID,
		Email:     info.Email,
		Role:      info.Role,
		CreatedAt: info.CreatedAt,
	})
}

func (h *Handler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.GetAdminID(r.Context())
	targetID := chi.URLParam(r, "adminID")

	if err := h.service.Delete(r.Context(), requesterID, targetID); err != nil {
		if errors.Is(err, core.ErrSelfAction) {
			core.JSONError(
				w,
				core.PolicyError("you cannot delete your own account"),
			)
			return
		}
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "admin")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, map[string]string{"message": "admin deleted"})
}
