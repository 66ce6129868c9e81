package table

import (
	"fmt"
	"slices"

	"github.com/spf13/cast"
)

// Grouping is the result of partitioning a table by a group key column.
// Sub-tables preserve original row order; Values reports the distinct key
// values in first-appearance order.
type Grouping struct {
	key    string
	groups map[string]*Table
	values []string
}

// GroupBy partitions the table by the named column.
// Key values are compared as strings, so a numeric column groups the same
// as its string form ("8" and 8 fall into the same group).
func (t *Table) GroupBy(key string) (*Grouping, error) {
	if !t.HasColumn(key) {
		return nil, fmt.Errorf("no group key column '%s' in table", key)
	}

	g := &Grouping{
		key:    key,
		groups: make(map[string]*Table),
	}
	for i, r := range t.rows {
		v, err := cast.ToStringE(r[key])
		if err != nil {
			return nil, fmt.Errorf("group key '%s' row %d: %w", key, i, err)
		}
		sub, ok := g.groups[v]
		if !ok {
			sub = t.empty()
			g.groups[v] = sub
			g.values = append(g.values, v)
		}
		sub.rows = append(sub.rows, r)
	}
	return g, nil
}

func (g *Grouping) Key() string {
	return g.key
}

// Values returns the distinct key values in first-appearance order
func (g *Grouping) Values() []string {
	return slices.Clone(g.values)
}

// Group returns the sub-table for the given key value
func (g *Grouping) Group(value string) (*Table, bool) {
	sub, ok := g.groups[value]
	return sub, ok
}

func (g *Grouping) Len() int {
	return len(g.groups)
}
