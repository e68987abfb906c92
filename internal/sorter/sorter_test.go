package sorter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablesort/internal/model"
	"tablesort/internal/sorter"
)

func singleColumn(id string, values ...string) *model.Table {
	records := make([][]string, len(values))
	for i, v := range values {
		records[i] = []string{v}
	}
	return model.NewTable(id, []string{"value"}, records)
}

func column(t *model.Table, col int) []string {
	return t.Column(col)
}

func catalog(t *testing.T, tables ...*model.Table) *model.Catalog {
	t.Helper()

	c, err := model.NewCatalog(tables...)
	require.NoError(t, err)

	return c
}

func TestSortTableToggleScenario(t *testing.T) {
	t.Parallel()

	table := singleColumn("T", "b", "a", "c")
	tables := catalog(t, table)
	s := sorter.New(nil)

	want := []struct {
		dir    sorter.Direction
		values []string
	}{
		{sorter.Ascending, []string{"a", "b", "c"}},
		{sorter.Descending, []string{"c", "b", "a"}},
		{sorter.Ascending, []string{"a", "b", "c"}},
		{sorter.Descending, []string{"c", "b", "a"}},
	}

	for i, w := range want {
		dir, err := s.SortTable(tables, 0, "T", false)
		require.NoError(t, err, "call %d", i+1)
		assert.Equal(t, w.dir, dir, "call %d", i+1)
		assert.Equal(t, w.values, column(table, 0), "call %d", i+1)
		assert.Equal(t, w.dir, s.Registry().Direction("T", 0), "call %d", i+1)
	}
}

func TestSortTableNumericVersusText(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		values  []string
		want    []string
		numeric bool
	}{
		"numeric": {
			values:  []string{"10", "9", "2"},
			numeric: true,
			want:    []string{"2", "9", "10"},
		},
		"text": {
			values: []string{"10", "9", "2"},
			want:   []string{"10", "2", "9"},
		},
		"case insensitive": {
			values: []string{"Banana", "apple"},
			want:   []string{"apple", "Banana"},
		},
		"numeric prefix": {
			values:  []string{"12px", "3.5 kg", "-1e1"},
			numeric: true,
			want:    []string{"-1e1", "3.5 kg", "12px"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			table := singleColumn("T", tc.values...)
			s := sorter.New(nil)

			dir, err := s.SortTable(catalog(t, table), 0, "T", tc.numeric)
			require.NoError(t, err)
			assert.Equal(t, sorter.Ascending, dir)
			assert.Equal(t, tc.want, column(table, 0))
		})
	}
}

func TestSortKeepsRowsAndHeader(t *testing.T) {
	t.Parallel()

	table := model.NewTable("T", []string{"name", "score"}, [][]string{
		{"carol", "7"},
		{"alice", "9"},
		{"bob", "8"},
	})
	s := sorter.New(nil)

	_, err := s.Sort(table, "T", 1, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "score"}, table.Header)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"carol", "bob", "alice"}, column(table, 0))

	// Whole rows move together and keep their identity.
	ids := make([]int, len(table.Rows))
	for i, r := range table.Rows {
		ids[i] = r.ID
	}
	assert.ElementsMatch(t, []int{0, 1, 2}, ids)
	assert.Equal(t, []string{"alice", "9"}, table.Rows[2].Cells)
}

func TestSortStateIsIndependent(t *testing.T) {
	t.Parallel()

	t1 := model.NewTable("T1", []string{"a", "b"}, [][]string{{"2", "x"}, {"1", "y"}})
	t2 := model.NewTable("T2", []string{"a"}, [][]string{{"z"}, {"y"}})
	tables := catalog(t, t1, t2)
	s := sorter.New(nil)

	_, err := s.SortTable(tables, 1, "T1", false)
	require.NoError(t, err)
	_, err = s.SortTable(tables, 0, "T1", false)
	require.NoError(t, err)

	reg := s.Registry()
	assert.Equal(t, sorter.Ascending, reg.Direction("T1", 0))
	assert.Equal(t, sorter.Ascending, reg.Direction("T1", 1))
	assert.Equal(t, sorter.Unsorted, reg.Direction("T2", 0))

	_, err = s.SortTable(tables, 0, "T2", false)
	require.NoError(t, err)
	assert.Equal(t, sorter.Ascending, reg.Direction("T2", 0))
	assert.Equal(t, sorter.Ascending, reg.Direction("T1", 0))
	assert.Equal(t, map[int]sorter.Direction{0: sorter.Ascending, 1: sorter.Ascending}, reg.Columns("T1"))
}

func TestSortTableErrors(t *testing.T) {
	t.Parallel()

	ragged := model.NewTable("ragged", []string{"a", "b"}, [][]string{{"1", "2"}, {"3"}})

	tcs := map[string]struct {
		err     error
		tableID string
		col     int
	}{
		"missing table": {
			tableID: "nope",
			col:     0,
			err:     sorter.ErrInvalidTable,
		},
		"negative column": {
			tableID: "ragged",
			col:     -1,
			err:     sorter.ErrColumnOutOfRange,
		},
		"column beyond every row": {
			tableID: "ragged",
			col:     5,
			err:     sorter.ErrColumnOutOfRange,
		},
		"column beyond a short row": {
			tableID: "ragged",
			col:     1,
			err:     sorter.ErrColumnOutOfRange,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := sorter.New(nil)
			tables := catalog(t, model.NewTable(ragged.ID, ragged.Header, [][]string{{"1", "2"}, {"3"}}))

			dir, err := s.SortTable(tables, tc.col, tc.tableID, false)
			require.ErrorIs(t, err, tc.err)
			assert.Equal(t, sorter.Unsorted, dir)
			assert.Equal(t, sorter.Unsorted, s.Registry().Direction(tc.tableID, tc.col))
		})
	}
}

func TestSortEmptyTableToggles(t *testing.T) {
	t.Parallel()

	table := model.NewTable("empty", []string{"a"}, nil)
	s := sorter.New(nil)

	dir, err := s.Sort(table, "empty", 3, false)
	require.NoError(t, err)
	assert.Equal(t, sorter.Ascending, dir)

	dir, err = s.Sort(table, "empty", 3, false)
	require.NoError(t, err)
	assert.Equal(t, sorter.Descending, dir)
}

func TestThreeWayIsStable(t *testing.T) {
	t.Parallel()

	table := model.NewTable("T", []string{"k", "n"}, [][]string{
		{"a", "1"},
		{"b", "2"},
		{"A", "3"},
	})
	s := sorter.New(nil)

	_, err := s.Sort(table, "T", 0, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "2"}, column(table, 1))

	_, err = s.Sort(table, "T", 0, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "3"}, column(table, 1))
}

func TestThreeWayNaNPlacement(t *testing.T) {
	t.Parallel()

	table := singleColumn("T", "5", "n/a", "1")
	s := sorter.New(nil)

	_, err := s.Sort(table, "T", 0, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"n/a", "1", "5"}, column(table, 0))

	_, err = s.Sort(table, "T", 0, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "1", "n/a"}, column(table, 0))
}

func TestLegacyComparatorMatchesOnDistinctKeys(t *testing.T) {
	t.Parallel()

	table := singleColumn("T", "10", "9", "2", "33")
	s := sorter.New(nil, sorter.WithComparator(sorter.CompareLegacy))

	dir, err := s.Sort(table, "T", 0, true)
	require.NoError(t, err)
	assert.Equal(t, sorter.Ascending, dir)
	assert.Equal(t, []string{"2", "9", "10", "33"}, column(table, 0))

	dir, err = s.Sort(table, "T", 0, true)
	require.NoError(t, err)
	assert.Equal(t, sorter.Descending, dir)
	assert.Equal(t, []string{"33", "10", "9", "2"}, column(table, 0))
}

func TestLegacyComparatorKeepsEveryRow(t *testing.T) {
	t.Parallel()

	table := singleColumn("T", "b", "a", "b", "a", "x", "b")
	s := sorter.New(nil, sorter.WithComparator(sorter.CompareLegacy))

	_, err := s.Sort(table, "T", 0, false)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "a", "b", "b", "b", "x"}, column(table, 0))
}

func TestParseComparator(t *testing.T) {
	t.Parallel()

	c, err := sorter.ParseComparator("")
	require.NoError(t, err)
	assert.Equal(t, sorter.CompareThreeWay, c)

	c, err = sorter.ParseComparator(" Legacy ")
	require.NoError(t, err)
	assert.Equal(t, sorter.CompareLegacy, c)

	_, err = sorter.ParseComparator("locale")
	require.Error(t, err)
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		in   string
		want float64
	}{
		"integer":           {in: "42", want: 42},
		"leading space":     {in: "  7", want: 7},
		"byte order mark":   {in: "\uFEFF 42", want: 42},
		"unit suffix":       {in: "12px", want: 12},
		"exponent":          {in: " -3.5e2 kg", want: -350},
		"dangling exponent": {in: "1e", want: 1},
		"leading dot":       {in: ".5", want: 0.5},
		"plus sign":         {in: "+7", want: 7},
		"hex is not parsed": {in: "0x10", want: 0},
		"infinity":          {in: "Infinity", want: math.Inf(1)},
		"negative infinity": {in: "-Infinity!", want: math.Inf(-1)},
		"overflow":          {in: "1e400", want: math.Inf(1)},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, sorter.ParseNumber(tc.in))
		})
	}

	for _, in := range []string{"", "abc", "-", ".", "inf", "e5"} {
		assert.True(t, math.IsNaN(sorter.ParseNumber(in)), "%q", in)
	}
}
