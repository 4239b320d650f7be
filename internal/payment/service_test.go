// AngelaMos | 2026
// service_test.go

package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgegym/api/internal/core"
	"github.com/forgegym/api/internal/plan"
	"github.com/forgegym/api/internal/store"
)

var testSeed = store.Seed{
	AdminName:         "Forge Admin",
	AdminEmail:        "admin@forge.com",
	AdminPasswordHash: "seeded-hash",
}

func newTestService(now time.Time) (*Service, *store.Store, *store.MemoryGateway) {
	gw := store.NewMemoryGateway()
	st := store.New(gw, testSeed)
	svc := NewService(st)
	svc.now = func() time.Time { return now }
	return svc, st, gw
}

func addCustomer(t *testing.T, st *store.Store, id, name string) {
	t.Helper()
	err := st.Update(context.Background(), func(state *store.State) error {
		state.Users = append(state.Users, store.User{
			ID:       id,
			Name:     name,
			Email:    id + "@x.com",
			Role:     store.RoleCustomer,
			JoinedAt: time.Now(),
		})
		return nil
	})
	require.NoError(t, err)
}

func TestRecordQuarterlyPayment(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	svc, st, _ := newTestService(now)
	addCustomer(t, st, "cust-1", "Jane Doe")
	ctx := context.Background()

	recorded, err := svc.Record(ctx, "cust-1", plan.Quarterly)
	require.NoError(t, err)

	assert.NotEmpty(t, recorded.ID)
	assert.Equal(t, "cust-1", recorded.UserID)
	assert.Equal(t, "Jane Doe", recorded.UserName)
	assert.Equal(t, 4000, recorded.Amount)
	assert.Equal(t, plan.Quarterly, recorded.Plan)
	assert.Equal(t, store.PaymentCompleted, recorded.Status)
	assert.True(t, now.Equal(recorded.Date))

	err = st.View(ctx, func(state *store.State) error {
		require.Len(t, state.Payments, 1)
		user := state.UserByID("cust-1")
		require.NotNil(t, user)
		assert.Equal(t, plan.Quarterly, user.MembershipType)
		require.NotNil(t, user.MembershipExpiry)
		assert.True(t, now.AddDate(0, 3, 0).Equal(*user.MembershipExpiry))
		return nil
	})
	require.NoError(t, err)
}

func TestRecordExpiryPerPlan(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		plan   string
		months int
		amount int
	}{
		{plan.Monthly, 1, 1500},
		{plan.Quarterly, 3, 4000},
		{plan.Yearly, 12, 14000},
	}

	for _, tt := range tests {
		t.Run(tt.plan, func(t *testing.T) {
			svc, st, _ := newTestService(now)
			addCustomer(t, st, "cust-1", "Jane Doe")

			recorded, err := svc.Record(context.Background(), "cust-1", tt.plan)
			require.NoError(t, err)
			assert.Equal(t, tt.amount, recorded.Amount)

			err = st.View(context.Background(), func(state *store.State) error {
				user := state.UserByID("cust-1")
				require.NotNil(t, user.MembershipExpiry)
				assert.True(t, now.AddDate(0, tt.months, 0).Equal(*user.MembershipExpiry))
				return nil
			})
			require.NoError(t, err)
		})
	}
}

func TestRecordRenewalOverwritesExpiry(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	svc, st, _ := newTestService(now)
	addCustomer(t, st, "cust-1", "Jane Doe")
	ctx := context.Background()

	_, err := svc.Record(ctx, "cust-1", plan.Yearly)
	require.NoError(t, err)

	// Renewing mid-term discards the remaining eleven-plus months; the
	// expiry is replaced, never extended.
	_, err = svc.Record(ctx, "cust-1", plan.Monthly)
	require.NoError(t, err)

	err = st.View(ctx, func(state *store.State) error {
		user := state.UserByID("cust-1")
		assert.Equal(t, plan.Monthly, user.MembershipType)
		assert.True(t, now.AddDate(0, 1, 0).Equal(*user.MembershipExpiry))
		assert.Len(t, state.Payments, 2)
		return nil
	})
	require.NoError(t, err)
}

func TestRecordUnknownPlan(t *testing.T) {
	svc, st, gw := newTestService(time.Now())
	addCustomer(t, st, "cust-1", "Jane Doe")
	savesBefore := gw.Saves()

	_, err := svc.Record(context.Background(), "cust-1", "Weekly")
	assert.ErrorIs(t, err, core.ErrUnknownPlan)

	// Rejected before any durable write.
	assert.Equal(t, savesBefore, gw.Saves())
}

func TestRecordUnknownUser(t *testing.T) {
	svc, _, gw := newTestService(time.Now())
	savesBefore := gw.Saves()

	_, err := svc.Record(context.Background(), "ghost", plan.Monthly)
	assert.ErrorIs(t, err, core.ErrUserNotFound)
	assert.Equal(t, savesBefore, gw.Saves())
}

func TestRecordIsOneDurableWrite(t *testing.T) {
	svc, st, gw := newTestService(time.Now())
	addCustomer(t, st, "cust-1", "Jane Doe")
	savesBefore := gw.Saves()

	_, err := svc.Record(context.Background(), "cust-1", plan.Monthly)
	require.NoError(t, err)

	// Payment append and membership refresh land in the same rewrite.
	assert.Equal(t, savesBefore+1, gw.Saves())
}

func TestListForUser(t *testing.T) {
	svc, st, _ := newTestService(time.Now())
	addCustomer(t, st, "cust-1", "Jane Doe")
	addCustomer(t, st, "cust-2", "John Roe")
	ctx := context.Background()

	_, err := svc.Record(ctx, "cust-1", plan.Monthly)
	require.NoError(t, err)
	_, err = svc.Record(ctx, "cust-2", plan.Yearly)
	require.NoError(t, err)
	_, err = svc.Record(ctx, "cust-1", plan.Quarterly)
	require.NoError(t, err)

	payments, err := svc.ListForUser(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, plan.Monthly, payments[0].Plan)
	assert.Equal(t, plan.Quarterly, payments[1].Plan)

	none, err := svc.ListForUser(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, none)
}
