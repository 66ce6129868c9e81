package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCsv(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		opts []CsvOpts

		expectedColumns []string
		expectedRows    int
		wantErr         bool
	}{
		{
			name:            "header auto-detected",
			csv:             "name,mpg\nmazda,21.0\ndatsun,22.8\n",
			expectedColumns: []string{"name", "mpg"},
			expectedRows:    2,
		},
		{
			name:            "all-numeric first record is data",
			csv:             "1,21.0\n2,22.8\n",
			expectedColumns: []string{"column_0", "column_1"},
			expectedRows:    2,
		},
		{
			name:            "header mode off",
			csv:             "name,mpg\nmazda,21.0\n",
			opts:            []CsvOpts{WithCsvHeaderMode(CsvHeaderModeOff)},
			expectedColumns: []string{"column_0", "column_1"},
			expectedRows:    2,
		},
		{
			name:            "header mode on with numeric header",
			csv:             "1,2\n3,4\n",
			opts:            []CsvOpts{WithCsvHeaderMode(CsvHeaderModeOn)},
			expectedColumns: []string{"1", "2"},
			expectedRows:    1,
		},
		{
			name:            "custom delimiter and comment",
			csv:             "# comment line\nname;mpg\nmazda;21.0\n",
			opts:            []CsvOpts{WithCsvDelimiter(';'), WithCsvComment('#')},
			expectedColumns: []string{"name", "mpg"},
			expectedRows:    1,
		},
		{
			name:    "empty input",
			csv:     "",
			wantErr: true,
		},
		{
			name:    "ragged record",
			csv:     "name,mpg\nmazda\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := LoadCsv(strings.NewReader(tt.csv), tt.opts...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedColumns, tbl.Columns())
			assert.Equal(t, tt.expectedRows, tbl.NumRows())
		})
	}
}

func TestLoadCsvValues(t *testing.T) {
	tbl, err := LoadCsv(strings.NewReader("name,mpg\nmazda,21.0\ndatsun,22.8\n"))
	require.NoError(t, err)

	mpg, err := tbl.Float64Column("mpg")
	require.NoError(t, err)
	assert.Equal(t, []float64{21.0, 22.8}, mpg)
}
