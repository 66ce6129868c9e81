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

const ScatterRendererIdentifier = "scatter"

func init() {
	Factory.RegisterRenderers(NewScatterRenderer)
}

type ScatterConfig struct {
	X string `hcl:"x"`
	Y string `hcl:"y"`
	// optional column whose (shared) group value is used as the chart title
	TitleColumn *string `hcl:"title_column,optional"`
	XLabel      *string `hcl:"x_label,optional"`
	YLabel      *string `hcl:"y_label,optional"`
}

func (c *ScatterConfig) Identifier() string {
	return ScatterRendererIdentifier
}

func (c *ScatterConfig) Validate() error {
	if c.X == "" || c.Y == "" {
		return errors.New("x and y columns are required")
	}
	return nil
}

// ScatterRenderer renders a group sub-table as a PNG scatter chart of two
// numeric columns
type ScatterRenderer struct {
	Config *ScatterConfig
}

func NewScatterRenderer() Renderer {
	return &ScatterRenderer{Config: &ScatterConfig{}}
}

func (r *ScatterRenderer) Identifier() string {
	return ScatterRendererIdentifier
}

func (r *ScatterRenderer) Init(body hcl.Body) error {
	return parse.DecodeBody(body, r.Config)
}

func (r *ScatterRenderer) Render(_ context.Context, group *table.Table) (*types.Artifact, error) {
	pts, err := xyPoints(group, r.Config.X, r.Config.Y)
	if err != nil {
		return nil, err
	}

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("error building scatter plot: %w", err)
	}

	p := plot.New()
	if err := applyChartLabels(p, group, r.Config.TitleColumn, labelOr(r.Config.XLabel, r.Config.X), labelOr(r.Config.YLabel, r.Config.Y)); err != nil {
		return nil, err
	}
	p.Add(plotter.NewGrid(), s)

	return pngArtifact(p)
}

// xyPoints extracts two numeric columns as plotter points
func xyPoints(group *table.Table, x, y string) (plotter.XYs, error) {
	if group.NumRows() == 0 {
		return nil, errors.New("cannot render an empty sub-table")
	}
	xs, err := group.Float64Column(x)
	if err != nil {
		return nil, err
	}
	ys, err := group.Float64Column(y)
	if err != nil {
		return nil, err
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts, nil
}

func labelOr(label *string, fallback string) string {
	if label != nil {
		return *label
	}
	return fallback
}

// applyChartLabels sets axis labels and, if a title column is configured,
// the chart title from the group's shared value of that column
func applyChartLabels(p *plot.Plot, group *table.Table, titleColumn *string, xLabel, yLabel string) error {
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	if titleColumn == nil {
		return nil
	}
	titles, err := group.StringColumn(*titleColumn)
	if err != nil {
		return err
	}
	p.Title.Text = titles[0]
	return nil
}
