package table

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBy(t *testing.T) {
	tbl, err := NewFromRows([]string{"group", "value"}, []Row{
		{"group": "B", "value": 1},
		{"group": "A", "value": 2},
		{"group": "B", "value": 3},
		{"group": "A", "value": 4},
		{"group": "C", "value": 5},
	})
	require.NoError(t, err)

	g, err := tbl.GroupBy("group")
	require.NoError(t, err)

	// distinct values in first-appearance order
	assert.Equal(t, []string{"B", "A", "C"}, g.Values())
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, "group", g.Key())

	// intra-group row order is the original row order
	b, ok := g.Group("B")
	require.True(t, ok)
	vals, err := b.Float64Column("value")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3}, vals)

	_, ok = g.Group("D")
	assert.False(t, ok)
}

func TestGroupByUnknownColumn(t *testing.T) {
	tbl, err := NewFromRows([]string{"group"}, []Row{{"group": "A"}})
	require.NoError(t, err)

	_, err = tbl.GroupBy("no_such_column")
	assert.Error(t, err)
}

func TestGroupByNumericKey(t *testing.T) {
	// numeric key values group the same as their string form
	tbl, err := NewFromRows([]string{"cyl", "mpg"}, []Row{
		{"cyl": 8, "mpg": 18.7},
		{"cyl": "8", "mpg": 14.3},
		{"cyl": 4, "mpg": 22.8},
	})
	require.NoError(t, err)

	g, err := tbl.GroupBy("cyl")
	require.NoError(t, err)
	assert.Equal(t, []string{"8", "4"}, g.Values())

	eight, ok := g.Group("8")
	require.True(t, ok)
	assert.Equal(t, 2, eight.NumRows())
}

// partitioning then concatenating all sub-tables must recover exactly the
// original row multiset - no rows lost or duplicated
func TestGroupByPreservesRows(t *testing.T) {
	var rows []Row
	for i := 0; i < 100; i++ {
		rows = append(rows, Row{
			"group": fmt.Sprintf("g%d", i%7),
			"value": i,
		})
	}
	tbl, err := NewFromRows([]string{"group", "value"}, rows)
	require.NoError(t, err)

	g, err := tbl.GroupBy("group")
	require.NoError(t, err)

	var recovered []int
	for _, v := range g.Values() {
		sub, ok := g.Group(v)
		require.True(t, ok)
		for i := 0; i < sub.NumRows(); i++ {
			recovered = append(recovered, sub.Row(i)["value"].(int))
		}
	}

	require.Len(t, recovered, tbl.NumRows())
	sort.Ints(recovered)
	for i, v := range recovered {
		assert.Equal(t, i, v)
	}
}
