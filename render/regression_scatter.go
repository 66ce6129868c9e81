package render

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/plotpipe/plotpipe-sdk/parse"
	"github.com/plotpipe/plotpipe-sdk/table"
	"github.com/plotpipe/plotpipe-sdk/types"
)

const RegressionScatterRendererIdentifier = "regression_scatter"

func init() {
	Factory.RegisterRenderers(NewRegressionScatterRenderer)
}

// RegressionScatterRenderer renders a scatter chart of two numeric columns
// with an ordinary least squares fit line overlaid. The fit itself comes
// from gonum - this renderer just draws it.
type RegressionScatterRenderer struct {
	Config *ScatterConfig
}

func NewRegressionScatterRenderer() Renderer {
	return &RegressionScatterRenderer{Config: &ScatterConfig{}}
}

func (r *RegressionScatterRenderer) Identifier() string {
	return RegressionScatterRendererIdentifier
}

func (r *RegressionScatterRenderer) Init(body hcl.Body) error {
	return parse.DecodeBody(body, r.Config)
}

func (r *RegressionScatterRenderer) Render(_ context.Context, group *table.Table) (*types.Artifact, error) {
	pts, err := xyPoints(group, r.Config.X, r.Config.Y)
	if err != nil {
		return nil, err
	}

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("error building scatter plot: %w", err)
	}
	fit := plotter.NewFunction(func(x float64) float64 {
		return alpha + beta*x
	})

	p := plot.New()
	if err := applyChartLabels(p, group, r.Config.TitleColumn, labelOr(r.Config.XLabel, r.Config.X), labelOr(r.Config.YLabel, r.Config.Y)); err != nil {
		return nil, err
	}
	p.Add(plotter.NewGrid(), s, fit)

	return pngArtifact(p)
}
