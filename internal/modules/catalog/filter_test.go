package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []Product {
	return []Product{
		{ID: "1", Name: "A", Images: []string{"u1"}},
		{ID: "2", Name: "B", Images: []string{"u2"}},
		{ID: "3", Name: "Car Diffuser"},
		{ID: "4", Name: "Room Spray"},
	}
}

func TestFilterEmptyTermReturnsAll(t *testing.T) {
	in := sample()
	out := Filter(in, "")
	assert.Equal(t, in, out)
}

func TestFilterIsCaseInsensitiveOnName(t *testing.T) {
	out := Filter(sample(), "DIFF")
	require.Len(t, out, 1)
	assert.Equal(t, "3", out[0].ID)

	out = Filter(sample(), "car")
	require.Len(t, out, 1)
	assert.Equal(t, "Car Diffuser", out[0].Name)
}

func TestFilterPreservesOrder(t *testing.T) {
	out := Filter(sample(), "r")
	ids := make([]string, 0, len(out))
	for _, p := range out {
		ids = append(ids, p.ID)
	}
	// "Car Diffuser" and "Room Spray" both contain r, in input order.
	assert.Equal(t, []string{"3", "4"}, ids)
}

func TestFilterNoMatchIsEmptyNotNilError(t *testing.T) {
	out := Filter(sample(), "zzz")
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

// Typing "a" into search leaves only product A visible out of A and B.
func TestFilterSearchScenario(t *testing.T) {
	in := []Product{
		{ID: "1", Name: "A", Images: []string{"u1"}},
		{ID: "2", Name: "B", Images: []string{"u2"}},
	}
	out := Filter(in, "a")
	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)
}
