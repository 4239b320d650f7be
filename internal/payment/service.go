// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forgegym/api/internal/core"
	"github.com/forgegym/api/internal/plan"
	"github.com/forgegym/api/internal/store"
)

type Service struct {
	store *store.Store
	now   func() time.Time
}

func NewService(st *store.Store) *Service {
	return &Service{
		store: st,
		now:   time.Now,
	}
}

// Record appends a completed payment for the named plan and refreshes the
// owning user's membership in the same durable write. The new expiry is
// now + the plan's duration in calendar months, replacing any prior
// expiry outright: renewing before expiry discards remaining time rather
// than extending it (the renewal overwrite policy).
func (s *Service) Record(
	ctx context.Context,
	userID, planName string,
) (*store.Payment, error) {
	p, ok := plan.ByName(planName)
	if !ok {
		return nil, fmt.Errorf("record payment %q: %w", planName, core.ErrUnknownPlan)
	}

	now := s.now()
	recorded := store.Payment{
		ID:     uuid.New().String(),
		UserID: userID,
		Amount: p.Price,
		Date:   now,
		Plan:   p.Name,
		Status: store.PaymentCompleted,
	}

	err := s.store.Update(ctx, func(state *store.State) error {
		user := state.UserByID(userID)
		if user == nil {
			return fmt.Errorf("record payment: %w", core.ErrUserNotFound)
		}

		// Name is denormalized at payment time and never re-derived.
		recorded.UserName = user.Name

		expiry := now.AddDate(0, p.DurationMonths, 0)
		user.MembershipType = p.Name
		user.MembershipExpiry = &expiry

		state.Payments = append(state.Payments, recorded)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &recorded, nil
}

// ListForUser returns the user's payments in insertion order.
func (s *Service) ListForUser(
	ctx context.Context,
	userID string,
) ([]store.Payment, error) {
	var payments []store.Payment

	err := s.store.View(ctx, func(state *store.State) error {
		for _, p := range state.Payments {
			if p.UserID == userID {
				payments = append(payments, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payments, nil
}
