package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/plotpipe/plotpipe-sdk/types"
)

const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// pngArtifact wraps a plot as a PNG artifact
func pngArtifact(p *plot.Plot) (*types.Artifact, error) {
	wt, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("error rendering chart: %w", err)
	}
	return types.NewArtifact(wt, ".png"), nil
}
