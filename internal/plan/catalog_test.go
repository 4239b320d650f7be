// AngelaMos | 2026
// catalog_test.go

package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHasOnePlanPerName(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range All() {
		assert.False(t, seen[p.Name], "duplicate plan %s", p.Name)
		seen[p.Name] = true
	}
	assert.Len(t, seen, 3)
}

func TestCatalogDurationIncreasesWithTier(t *testing.T) {
	plans := All()
	require.Len(t, plans, 3)

	prev := 0
	for _, p := range plans {
		assert.Greater(t, p.DurationMonths, prev, "plan %s", p.Name)
		assert.Positive(t, p.Price, "plan %s", p.Name)
		assert.NotEmpty(t, p.Features, "plan %s", p.Name)
		prev = p.DurationMonths
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name     string
		price    int
		duration int
	}{
		{Monthly, 1500, 1},
		{Quarterly, 4000, 3},
		{Yearly, 14000, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.price, p.Price)
			assert.Equal(t, tt.duration, p.DurationMonths)
		})
	}

	_, ok := ByName("Weekly")
	assert.False(t, ok)
}
