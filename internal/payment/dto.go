// AngelaMos | 2026
// dto.go

package payment

import (
	"time"

	"github.com/forgegym/api/internal/store"
)

type RecordPaymentRequest struct {
	Plan string `json:"plan" validate:"required,oneof=Monthly Quarterly Yearly"`
}

type PaymentResponse struct {
	ID       string    `json:"id"`
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Amount   int       `json:"amount"`
	Date     time.Time `json:"date"`
	Plan     string    `json:"plan"`
	Status   string    `json:"status"`
}

func ToPaymentResponse(p *store.Payment) PaymentResponse {
	return PaymentResponse{
		ID:       p.ID,
		UserID:   p.UserID,
		UserName: p.UserName,
		Amount:   p.Amount,
		Date:     p.Date,
		Plan:     p.Plan,
		Status:   p.Status,
	}
}

func ToPaymentResponseList(payments []store.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, ToPaymentResponse(&payments[i]))
	}
	return responses
}
