// AngelaMos | 2026
// service.go

package admin

import (
	"context"
	"strings"
	"time"

	"github.com/forgegym/api/internal/store"
)

// Service answers the dashboard's aggregate questions. Every query is a
// pure derivation over the aggregate, recomputed on each call: there is
// no cached revenue figure and no stored active/expired flag, so results
// can never drift from the wall clock.
type Service struct {
	store        *store.Store
	recentWindow int
	now          func() time.Time
}

func NewService(st *store.Store, recentWindow int) *Service {
	return &Service{
		store:        st,
		recentWindow: recentWindow,
		now:          time.Now,
	}
}

type Overview struct {
	TotalRevenue   int `json:"totalRevenue"`
	TotalCustomers int `json:"totalCustomers"`
	ActiveMembers  int `json:"activeMembers"`
	CheckInsToday  int `json:"checkInsToday"`
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	now := s.now()
	today := now.Format(store.AttendanceDateLayout)
	overview := &Overview{}

	err := s.store.View(ctx, func(state *store.State) error {
		for _, p := range state.Payments {
			overview.TotalRevenue += p.Amount
		}

		for i := range state.Users {
			u := &state.Users[i]
			if u.Role != store.RoleCustomer {
				continue
			}
			overview.TotalCustomers++
			if u.HasActivePlan(now) {
				overview.ActiveMembers++
			}
		}

		for _, a := range state.Attendance {
			if a.Date == today {
				overview.CheckInsToday++
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return overview, nil
}

// SearchCustomers returns customers whose name or email contains the
// query, case-insensitively. An empty query returns every customer. No
// index is kept; the scan is re-run on every call.
func (s *Service) SearchCustomers(
	ctx context.Context,
	query string,
) ([]store.User, error) {
	needle := strings.ToLower(query)
	var matched []store.User

	err := s.store.View(ctx, func(state *store.State) error {
		for _, u := range state.Users {
			if u.Role != store.RoleCustomer {
				continue
			}
			if needle == "" ||
				strings.Contains(strings.ToLower(u.Name), needle) ||
				strings.Contains(strings.ToLower(u.Email), needle) {
				matched = append(matched, u)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matched, nil
}

func (s *Service) ListPayments(ctx context.Context) ([]store.Payment, error) {
	var payments []store.Payment

	err := s.store.View(ctx, func(state *store.State) error {
		payments = append(payments, state.Payments...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payments, nil
}

// RecentPayments returns the last recentWindow payments, most recent
// first.
func (s *Service) RecentPayments(ctx context.Context) ([]store.Payment, error) {
	payments, err := s.ListPayments(ctx)
	if err != nil {
		return nil, err
	}

	return lastReversed(payments, s.recentWindow), nil
}

// CheckInActivity is an attendance record joined with the owning user for
// display.
type CheckInActivity struct {
	ID             string `json:"id"`
	UserID         string `json:"userId"`
	UserName       string `json:"userName"`
	MembershipType string `json:"membershipType"`
	Date           string `json:"date"`
	CheckInTime    string `json:"checkInTime"`
}

// RecentCheckIns returns the last recentWindow check-ins, most recent
// first, each resolved against the user collection at read time.
func (s *Service) RecentCheckIns(
	ctx context.Context,
) ([]CheckInActivity, error) {
	var activity []CheckInActivity

	err := s.store.View(ctx, func(state *store.State) error {
		recent := lastReversed(state.Attendance, s.recentWindow)
		activity = make([]CheckInActivity, 0, len(recent))

		for _, a := range recent {
			entry := CheckInActivity{
				ID:             a.ID,
				UserID:         a.UserID,
				MembershipType: "No Plan",
				Date:           a.Date,
				CheckInTime:    a.CheckInTime,
			}
			if u := state.UserByID(a.UserID); u != nil {
				entry.UserName = u.Name
				if u.MembershipType != "" {
					entry.MembershipType = u.MembershipType
				}
			}
			activity = append(activity, entry)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return activity, nil
}

// lastReversed takes the final n elements in insertion order and reverses
// them for most-recent-first display.
func lastReversed[T any](items []T, n int) []T {
	start := len(items) - n
	if start < 0 {
		start = 0
	}

	tail := items[start:]
	out := make([]T, 0, len(tail))
	for i := len(tail) - 1; i >= 0; i-- {
		out = append(out, tail[i])
	}
	return out
}
