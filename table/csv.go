package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

type CsvHeaderMode string

const (
	CsvHeaderModeAuto CsvHeaderMode = "auto"
	CsvHeaderModeOff  CsvHeaderMode = "off"
	CsvHeaderModeOn   CsvHeaderMode = "on"
)

// opts

type CsvOpts func(*csvConfig)

func WithCsvHeaderMode(headerMode CsvHeaderMode) CsvOpts {
	return func(c *csvConfig) {
		c.HeaderMode = headerMode
	}
}

func WithCsvDelimiter(delimiter rune) CsvOpts {
	return func(c *csvConfig) {
		c.Delimiter = delimiter
	}
}

func WithCsvComment(comment rune) CsvOpts {
	return func(c *csvConfig) {
		c.Comment = comment
	}
}

type csvConfig struct {
	HeaderMode CsvHeaderMode
	Delimiter  rune
	Comment    rune
}

// LoadCsv reads delimited data into a Table.
// In auto header mode the first record is treated as a header row unless
// every field parses as a number, in which case columns are named
// column_0, column_1, ...
func LoadCsv(r io.Reader, opts ...CsvOpts) (*Table, error) {
	config := &csvConfig{
		HeaderMode: CsvHeaderModeAuto,
		Delimiter:  ',',
	}
	for _, opt := range opts {
		opt(config)
	}

	reader := csv.NewReader(r)
	reader.Comma = config.Delimiter
	if config.Comment != 0 {
		reader.Comment = config.Comment
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv input is empty")
	}

	var columns []string
	data := records
	if hasHeader(records[0], config.HeaderMode) {
		columns = records[0]
		data = records[1:]
	} else {
		columns = make([]string, len(records[0]))
		for i := range records[0] {
			columns[i] = fmt.Sprintf("column_%d", i)
		}
	}

	t, err := New(columns...)
	if err != nil {
		return nil, err
	}
	for i, record := range data {
		if len(record) != len(columns) {
			return nil, fmt.Errorf("record %d has %d fields, expected %d", i, len(record), len(columns))
		}
		row := make(Row, len(columns))
		for j, field := range record {
			row[columns[j]] = field
		}
		if err := t.AppendRow(row); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return t, nil
}

func hasHeader(first []string, mode CsvHeaderMode) bool {
	switch mode {
	case CsvHeaderModeOn:
		return true
	case CsvHeaderModeOff:
		return false
	}
	// auto - a first record made entirely of numbers cannot be a header
	for _, field := range first {
		if _, err := strconv.ParseFloat(field, 64); err != nil {
			return true
		}
	}
	return false
}
