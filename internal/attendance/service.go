// AngelaMos | 2026
// service.go

package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/forgegym/api/internal/core"
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

// CheckIn appends an attendance record for the user at the current wall
// clock. Membership state is never consulted: a lapsed or plan-less user
// may still check in. Nothing deduplicates repeat check-ins on the same
// day; each call appends.
func (s *Service) CheckIn(
	ctx context.Context,
	userID string,
) (*store.Attendance, error) {
	now := s.now()
	checked := store.Attendance{
		ID:          uuid.New().String(),
		UserID:      userID,
		Date:        now.Format(store.AttendanceDateLayout),
		CheckInTime: now.Format(store.CheckInTimeLayout),
	}

	err := s.store.Update(ctx, func(state *store.State) error {
		if state.UserByID(userID) == nil {
			return fmt.Errorf("check in: %w", core.ErrUserNotFound)
		}
		state.Attendance = append(state.Attendance, checked)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &checked, nil
}

// ListForUser returns the user's check-ins in insertion order.
func (s *Service) ListForUser(
	ctx context.Context,
	userID string,
) ([]store.Attendance, error) {
	var records []store.Attendance

	err := s.store.View(ctx, func(state *store.State) error {
		for _, a := range state.Attendance {
			if a.UserID == userID {
				records = append(records, a)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
