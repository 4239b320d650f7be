// AngelaMos | 2026
// service_test.go

package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgegym/api/internal/core"
	"github.com/forgegym/api/internal/store"
)

func newTestService(now time.Time) (*Service, *store.Store) {
	st := store.New(store.NewMemoryGateway(), store.Seed{
		AdminName:         "Forge Admin",
		AdminEmail:        "admin@forge.com",
		AdminPasswordHash: "seeded-hash",
	})
	svc := NewService(st)
	svc.now = func() time.Time { return now }
	return svc, st
}

func addCustomer(t *testing.T, st *store.Store, id string) {
	t.Helper()
	err := st.Update(context.Background(), func(state *store.State) error {
		state.Users = append(state.Users, store.User{
			ID:       id,
			Name:     "Jane Doe",
			Email:    id + "@x.com",
			Role:     store.RoleCustomer,
			JoinedAt: time.Now(),
		})
		return nil
	})
	require.NoError(t, err)
}

func TestCheckIn(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	svc, st := newTestService(now)
	addCustomer(t, st, "cust-1")

	checked, err := svc.CheckIn(context.Background(), "cust-1")
	require.NoError(t, err)

	assert.NotEmpty(t, checked.ID)
	assert.Equal(t, "cust-1", checked.UserID)
	assert.Equal(t, "2026-08-31", checked.Date)
	assert.Equal(t, "3:04:05 PM", checked.CheckInTime)
}

func TestCheckInSameDayAppends(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	svc, st := newTestService(now)
	addCustomer(t, st, "cust-1")
	ctx := context.Background()

	first, err := svc.CheckIn(ctx, "cust-1")
	require.NoError(t, err)
	second, err := svc.CheckIn(ctx, "cust-1")
	require.NoError(t, err)

	// Nothing deduplicates same-day visits; both rows survive.
	assert.NotEqual(t, first.ID, second.ID)
	records, err := svc.ListForUser(ctx, "cust-1")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCheckInWithoutPlan(t *testing.T) {
	svc, st := newTestService(time.Now())
	addCustomer(t, st, "cust-1")

	// Membership state is never consulted on check-in.
	_, err := svc.CheckIn(context.Background(), "cust-1")
	assert.NoError(t, err)
}

func TestCheckInUnknownUser(t *testing.T) {
	svc, _ := newTestService(time.Now())

	_, err := svc.CheckIn(context.Background(), "ghost")
	assert.ErrorIs(t, err, core.ErrUserNotFound)
}

func TestListForUser(t *testing.T) {
	svc, st := newTestService(time.Now())
	addCustomer(t, st, "cust-1")
	addCustomer(t, st, "cust-2")
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, "cust-1")
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, "cust-2")
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, "cust-1")
	require.NoError(t, err)

	records, err := svc.ListForUser(ctx, "cust-1")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	none, err := svc.ListForUser(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, none)
}
