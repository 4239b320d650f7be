// AngelaMos | 2026
// handler.go

package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/forgegym/api/internal/core"
	"github.com/forgegym/api/internal/middleware"
	"github.com/forgegym/api/internal/notify"
	"github.com/forgegym/api/internal/plan"
	"github.com/forgegym/api/internal/store"
)

// Notifier relays a descriptive order record to the external sink. The
// relay is fire-and-forget: its outcome never blocks or rolls back the
// recorded payment.
type Notifier interface {
	SendOrderAsync(order notify.Order)
}

type SessionSource interface {
	CurrentUser(ctx context.Context) (*store.User, error)
}

type Handler struct {
	service   *Service
	sessions  SessionSource
	notifier  Notifier
	validator *validator.Validate
}

func NewHandler(service *Service, sessions SessionSource, notifier Notifier) *Handler {
	return &Handler{
		service:   service,
		sessions:  sessions,
		notifier:  notifier,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/payments", func(r chi.Router) {
		r.Use(authenticator)

		r.Post("/", h.Record)
		r.Get("/me", h.ListMine)
	})
}

func (h *Handler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	user, err := h.sessions.CurrentUser(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}
	if user == nil {
		core.JSONError(w, core.UnauthorizedError("no active session"))
		return
	}

	recorded, err := h.service.Record(r.Context(), user.ID, req.Plan)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrUnknownPlan):
			core.NotFound(w, "plan")
		case errors.Is(err, core.ErrUserNotFound):
			core.NotFound(w, "user")
		case errors.Is(err, core.ErrPersistence):
			core.JSONError(w, core.PersistenceError())
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	if h.notifier != nil {
		p, _ := plan.ByName(recorded.Plan)
		h.notifier.SendOrderAsync(notify.Order{
			CustomerName:   user.Name,
			CustomerEmail:  user.Email,
			Plan:           recorded.Plan,
			Amount:         recorded.Amount,
			DurationMonths: p.DurationMonths,
			UserID:         user.ID,
			Timestamp:      recorded.Date,
		})
	}

	core.Created(w, ToPaymentResponse(recorded))
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	payments, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPaymentResponseList(payments))
}
