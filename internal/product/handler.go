// Ruthwik | 2026
// handler.go

package product

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/ruthwik2/storefront-admin/internal/core"
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

// RegisterRoutes wires the catalog surface. Reads are public; every
// mutation sits behind the authenticator. The split is declared here,
// per route, not inferred from the request method inside handlers.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/stats", h.GetStats)
		r.Get("/{productID}", h.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Post("/", h.CreateProduct)
			r.Put("/{productID}", h.UpdateProduct)
			r.Delete("/{productID}", h.DeleteProduct)
		})
	})
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProductResponseList(products))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "product")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProductResponse(product))
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, stats)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToProductResponse(product))
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	product, err := h.service.Update(r.Context(), productID, req)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "product")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProductResponse(product))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	if err := h.service.Delete(r.Context(), productID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "product")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, map[string]string{"message": "product deleted"})
}
