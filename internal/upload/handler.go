// Ruthwik | 2026
// handler.go

package upload

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ruthwik2/storefront-admin/internal/core"
)

type Handler struct {
	signer *Signer
}

func NewHandler(signer *Signer) *Handler {
	return &Handler{signer: signer}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/upload", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/signature", h.GetSignature)
	})
}

func (h *Handler) GetSignature(w http.ResponseWriter, r *http.Request) {
	signature, err := h.signer.Sign()
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, signature)
}
