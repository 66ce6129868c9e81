package table

import (
	"fmt"
	"slices"

	"github.com/spf13/cast"
)

// Row is a mapping from column name to value
type Row map[string]any

// Table is an ordered sequence of rows with a fixed column set.
// Every row has exactly the table's columns - AppendRow enforces this.
type Table struct {
	columns []string
	rows    []Row
}

func New(columns ...string) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("a table must have at least one column")
	}
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if c == "" {
			return nil, fmt.Errorf("column names must not be empty")
		}
		if _, ok := seen[c]; ok {
			return nil, fmt.Errorf("duplicate column name '%s'", c)
		}
		seen[c] = struct{}{}
	}
	return &Table{columns: slices.Clone(columns)}, nil
}

// NewFromRows builds a table whose column set is taken from the first row
func NewFromRows(columns []string, rows []Row) (*Table, error) {
	t, err := New(columns...)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if err := t.AppendRow(r); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return t, nil
}

func (t *Table) Columns() []string {
	return slices.Clone(t.columns)
}

func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.columns, name)
}

func (t *Table) NumRows() int {
	return len(t.rows)
}

func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// AppendRow adds a row, verifying it has exactly the table's column set
func (t *Table) AppendRow(r Row) error {
	if len(r) != len(t.columns) {
		return fmt.Errorf("row has %d columns, expected %d", len(r), len(t.columns))
	}
	for _, c := range t.columns {
		if _, ok := r[c]; !ok {
			return fmt.Errorf("row is missing column '%s'", c)
		}
	}
	t.rows = append(t.rows, r)
	return nil
}

// Cell returns the value at (row, column)
func (t *Table) Cell(i int, column string) (any, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, fmt.Errorf("row index %d out of range [0,%d)", i, len(t.rows))
	}
	if !t.HasColumn(column) {
		return nil, fmt.Errorf("no column '%s' in table", column)
	}
	return t.rows[i][column], nil
}

// Float64Column returns the named column coerced to float64 values
func (t *Table) Float64Column(name string) ([]float64, error) {
	if !t.HasColumn(name) {
		return nil, fmt.Errorf("no column '%s' in table", name)
	}
	vals := make([]float64, len(t.rows))
	for i, r := range t.rows {
		v, err := cast.ToFloat64E(r[name])
		if err != nil {
			return nil, fmt.Errorf("column '%s' row %d: %w", name, i, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// StringColumn returns the named column coerced to string values
func (t *Table) StringColumn(name string) ([]string, error) {
	if !t.HasColumn(name) {
		return nil, fmt.Errorf("no column '%s' in table", name)
	}
	vals := make([]string, len(t.rows))
	for i, r := range t.rows {
		v, err := cast.ToStringE(r[name])
		if err != nil {
			return nil, fmt.Errorf("column '%s' row %d: %w", name, i, err)
		}
		vals[i] = v
	}
	return vals, nil
}

// empty returns a table with the same column set and no rows
func (t *Table) empty() *Table {
	return &Table{columns: slices.Clone(t.columns)}
}
