package render

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/plotpipe/plotpipe-sdk/parse"
	"github.com/plotpipe/plotpipe-sdk/table"
	"github.com/plotpipe/plotpipe-sdk/types"
)

const HistogramRendererIdentifier = "histogram"

const defaultHistogramBins = 16

func init() {
	Factory.RegisterRenderers(NewHistogramRenderer)
}

type HistogramConfig struct {
	Column      string  `hcl:"column"`
	Bins        *int    `hcl:"bins,optional"`
	TitleColumn *string `hcl:"title_column,optional"`
	XLabel      *string `hcl:"x_label,optional"`
}

func (c *HistogramConfig) Identifier() string {
	return HistogramRendererIdentifier
}

func (c *HistogramConfig) Validate() error {
	if c.Column == "" {
		return errors.New("column is required")
	}
	if c.Bins != nil && *c.Bins < 1 {
		return errors.New("bins must be at least 1")
	}
	return nil
}

// HistogramRenderer renders the distribution of one numeric column per group
type HistogramRenderer struct {
	Config *HistogramConfig
}

func NewHistogramRenderer() Renderer {
	return &HistogramRenderer{Config: &HistogramConfig{}}
}

func (r *HistogramRenderer) Identifier() string {
	return HistogramRendererIdentifier
}

func (r *HistogramRenderer) Init(body hcl.Body) error {
	return parse.DecodeBody(body, r.Config)
}

func (r *HistogramRenderer) Render(_ context.Context, group *table.Table) (*types.Artifact, error) {
	if group.NumRows() == 0 {
		return nil, errors.New("cannot render an empty sub-table")
	}
	vals, err := group.Float64Column(r.Config.Column)
	if err != nil {
		return nil, err
	}

	bins := defaultHistogramBins
	if r.Config.Bins != nil {
		bins = *r.Config.Bins
	}
	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return nil, fmt.Errorf("error building histogram: %w", err)
	}

	p := plot.New()
	if err := applyChartLabels(p, group, r.Config.TitleColumn, labelOr(r.Config.XLabel, r.Config.Column), "count"); err != nil {
		return nil, err
	}
	p.Add(h)

	return pngArtifact(p)
}
