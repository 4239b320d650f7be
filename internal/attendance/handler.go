// AngelaMos | 2026
// handler.go

package attendance

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/forgegym/api/internal/core"
	"github.com/forgegym/api/internal/middleware"
	"github.com/forgegym/api/internal/store"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/attendance", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/check-in", h.CheckIn)
		r.Get("/me", h.ListMine)
	})
}

func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	checked, err := h.service.CheckIn(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUserNotFound):
			core.NotFound(w, "user")
		case errors.Is(err, core.ErrPersistence):
			core.JSONError(w, core.PersistenceError())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.Created(w, checked)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	records, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	if records == nil {
		records = []store.Attendance{}
	}

	core.OK(w, records)
}
