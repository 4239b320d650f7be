// AngelaMos | 2026
// handler.go

package admin

import (
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"

	"github.com/forgegym/api/internal/core"
	"github.com/forgegym/api/internal/member"
	"github.com/forgegym/api/internal/payment"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator, adminOnly func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(adminOnly)

		r.Get("/overview", h.GetOverview)
		r.Get("/customers", h.ListCustomers)
		r.Get("/payments", h.ListPayments)
		r.Get("/activity", h.GetActivity)
		r.Get("/stats/runtime", h.GetRuntimeStats)
	})
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, overview)
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("search")

	customers, err := h.service.SearchCustomers(r.Context(), query)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	responses := make([]member.UserResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, member.ToUserResponse(&customers[i]))
	}

	core.OK(w, CustomerListResponse{Customers: responses})
}

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListPayments(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, payment.ToPaymentResponseList(payments))
}

// GetActivity returns the most-recent-first activity feeds shown on the
// dashboard overview.
func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	checkIns, err := h.service.RecentCheckIns(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	payments, err := h.service.RecentPayments(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ActivityResponse{
		RecentCheckIns: checkIns,
		RecentPayments: payment.ToPaymentResponseList(payments),
	})
}

func (h *Handler) GetRuntimeStats(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	core.OK(w, RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		MemSys:       memStats.Sys,
		NumGC:        memStats.NumGC,
	})
}

type CustomerListResponse struct {
	Customers []member.UserResponse `json:"customers"`
}

type ActivityResponse struct {
	RecentCheckIns []CheckInActivity         `json:"recentCheckIns"`
	RecentPayments []payment.PaymentResponse `json:"recentPayments"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	NumCPU       int    `json:"num_cpu"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	MemSys       uint64 `json:"mem_sys_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
