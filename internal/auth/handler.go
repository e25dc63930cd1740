// Ruthwik | 2026
// handler.go

package auth

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
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/me", h.GetMe)
		})
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			core.JSONError(
				w,
				core.UnauthorizedError("invalid email or password"),
			)
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.JSONFlat(w, http.StatusOK, authEnvelope{
		Success:      true,
		AuthResponse: resp,
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			core.JSONError(w, core.DuplicateError("email"))
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.JSONFlat(w, http.StatusCreated, authEnvelope{
		Success:      true,
		AuthResponse: resp,
	})
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	adminID := middleware.GetAdminID(r.Context())
	if adminID == "" {
		core.Unauthorized(w, "")
		return
	}

	admin, err := h.service.GetCurrentAdmin(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "admin")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.JSONFlat(w, http.StatusOK, meEnvelope{
		Success: true,
		User:    *admin,
	})
}

// authEnvelope and meEnvelope flatten their payload beside the
// success flag; clients read token and user at the top level.
type authEnvelope struct {
	Success bool `json:"success"`
	*AuthResponse
}

type meEnvelope struct {
	Success bool          `json:"success"`
	User    AdminResponse `json:"user"`
}
