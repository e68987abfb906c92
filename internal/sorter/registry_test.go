package sorter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablesort/internal/sorter"
)

func TestRegistryToggle(t *testing.T) {
	t.Parallel()

	reg := sorter.NewRegistry()
	assert.Equal(t, sorter.Unsorted, reg.Direction("t", 0))
	assert.Empty(t, reg.Columns("t"))

	for i := 1; i <= 5; i++ {
		dir := reg.Toggle("t", 0)
		if i%2 == 1 {
			assert.Equal(t, sorter.Ascending, dir, "call %d", i)
		} else {
			assert.Equal(t, sorter.Descending, dir, "call %d", i)
		}
	}
	assert.Equal(t, sorter.Unsorted, reg.Direction("t", 1))

	cols := reg.Columns("t")
	cols[0] = sorter.Descending
	assert.Equal(t, sorter.Ascending, reg.Direction("t", 0), "Columns returns a copy")
}

func TestDirectionString(t *testing.T) {
	t.Parallel()

	assert.Empty(t, sorter.Unsorted.String())
	assert.Equal(t, "asc", sorter.Ascending.String())
	assert.Equal(t, "desc", sorter.Descending.String())
	assert.Equal(t, "↑", sorter.Ascending.Arrow())
	assert.Equal(t, "↓", sorter.Descending.Arrow())
}

func TestValidateOrder(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		order []int
		n     int
		ok    bool
	}{
		"identity":     {order: []int{0, 1, 2}, n: 3, ok: true},
		"permutation":  {order: []int{2, 0, 1}, n: 3, ok: true},
		"empty":        {order: nil, n: 0, ok: true},
		"short":        {order: []int{0, 1}, n: 3},
		"duplicate":    {order: []int{0, 0, 1}, n: 3},
		"out of range": {order: []int{0, 1, 3}, n: 3},
		"negative":     {order: []int{-1, 0, 1}, n: 3},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := sorter.ValidateOrder(tc.order, tc.n)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, sorter.ErrInvalidOrder)
		})
	}
}
