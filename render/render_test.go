package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotpipe/plotpipe-sdk/parse"
	"github.com/plotpipe/plotpipe-sdk/table"
)

func testGroup(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.NewFromRows([]string{"cyl", "hp", "mpg"}, []table.Row{
		{"cyl": "8", "hp": 175.0, "mpg": 19.2},
		{"cyl": "8", "hp": 245.0, "mpg": 13.3},
		{"cyl": "8", "hp": 150.0, "mpg": 15.2},
		{"cyl": "8", "hp": 110.0, "mpg": 21.4},
	})
	require.NoError(t, err)
	return tbl
}

func initRenderer(t *testing.T, id, config string) Renderer {
	t.Helper()
	r, err := Factory.GetRenderer(id)
	require.NoError(t, err)

	body, err := parse.ParseBody(parse.NewData([]byte(config), "test.hcl"))
	require.NoError(t, err)
	require.NoError(t, r.Init(body))
	return r
}

func TestScatterRenderer(t *testing.T) {
	r := initRenderer(t, ScatterRendererIdentifier, `x = "hp"
y = "mpg"
title_column = "cyl"`)

	artifact, err := r.Render(context.Background(), testGroup(t))
	require.NoError(t, err)
	assert.Equal(t, ".png", artifact.Extension)

	data, err := artifact.Bytes()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestHistogramRenderer(t *testing.T) {
	r := initRenderer(t, HistogramRendererIdentifier, `column = "mpg"
bins = 4`)

	artifact, err := r.Render(context.Background(), testGroup(t))
	require.NoError(t, err)
	assert.Equal(t, ".png", artifact.Extension)
}

func TestRegressionScatterRenderer(t *testing.T) {
	r := initRenderer(t, RegressionScatterRendererIdentifier, `x = "hp"
y = "mpg"`)

	artifact, err := r.Render(context.Background(), testGroup(t))
	require.NoError(t, err)
	assert.Equal(t, ".png", artifact.Extension)

	data, err := artifact.Bytes()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestScatterRendererErrors(t *testing.T) {
	r := initRenderer(t, ScatterRendererIdentifier, `x = "hp"
y = "mpg"`)

	// empty sub-table
	empty, err := table.New("hp", "mpg")
	require.NoError(t, err)
	_, err = r.Render(context.Background(), empty)
	assert.Error(t, err)

	// non-numeric column
	bad, err := table.NewFromRows([]string{"hp", "mpg"}, []table.Row{
		{"hp": "not a number", "mpg": 19.2},
	})
	require.NoError(t, err)
	_, err = r.Render(context.Background(), bad)
	assert.Error(t, err)
}

func TestRendererInitValidation(t *testing.T) {
	r, err := Factory.GetRenderer(ScatterRendererIdentifier)
	require.NoError(t, err)

	// y is missing
	body, err := parse.ParseBody(parse.NewData([]byte(`x = "hp"`), "test.hcl"))
	require.NoError(t, err)
	assert.Error(t, r.Init(body))
}

func TestFactoryUnknownRenderer(t *testing.T) {
	_, err := Factory.GetRenderer("no_such_renderer")
	assert.Error(t, err)
}
