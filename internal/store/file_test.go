// AngelaMos | 2026
// file_test.go

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileGatewayRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	gateway, err := NewFileGateway(path)
	require.NoError(t, err)

	ctx := context.Background()

	_, err = gateway.Load(ctx)
	assert.ErrorIs(t, err, ErrNoRecord)

	record := []byte(`{"users":[],"payments":[],"attendance":[],"currentUserId":null}`)
	require.NoError(t, gateway.Save(ctx, record))

	loaded, err := gateway.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, record, loaded)

	// Saving again replaces the prior content wholesale.
	replaced := []byte(`{"users":[],"payments":[],"attendance":[],"currentUserId":"u-1"}`)
	require.NoError(t, gateway.Save(ctx, replaced))

	loaded, err = gateway.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, replaced, loaded)

	// The temp file never lingers after a completed save.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileGatewayCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "db.json")

	gateway, err := NewFileGateway(path)
	require.NoError(t, err)

	require.NoError(t, gateway.Ping(context.Background()))
	require.NoError(t, gateway.Save(context.Background(), []byte(`{}`)))
}

func TestStoreWithFileGatewaySurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	ctx := context.Background()

	gateway, err := NewFileGateway(path)
	require.NoError(t, err)

	st := New(gateway, testSeed)
	err = st.Update(ctx, func(state *State) error {
		id := "admin-001"
		state.CurrentUserID = &id
		return nil
	})
	require.NoError(t, err)

	// Fresh gateway and store over the same file: the session reference
	// comes back.
	reopenedGateway, err := NewFileGateway(path)
	require.NoError(t, err)

	reopened := New(reopenedGateway, testSeed)
	err = reopened.View(ctx, func(state *State) error {
		require.NotNil(t, state.CurrentUserID)
		assert.Equal(t, "admin-001", *state.CurrentUserID)
		return nil
	})
	require.NoError(t, err)
}
