package render

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/plotpipe/plotpipe-sdk/table"
	"github.com/plotpipe/plotpipe-sdk/types"
)

// Renderer maps a group sub-table to an artifact.
// Render must be pure - the same sub-table must produce the same artifact.
type Renderer interface {
	Identifier() string
	// Init decodes the renderer config from an HCL body
	Init(body hcl.Body) error
	Render(ctx context.Context, group *table.Table) (*types.Artifact, error)
}

// RenderFunc is the signature of a programmatic rendering capability
type RenderFunc func(ctx context.Context, group *table.Table) (*types.Artifact, error)

// FuncRenderer adapts a RenderFunc to the Renderer interface
type FuncRenderer struct {
	name string
	fn   RenderFunc
}

func NewFuncRenderer(name string, fn RenderFunc) *FuncRenderer {
	return &FuncRenderer{name: name, fn: fn}
}

func (r *FuncRenderer) Identifier() string {
	return r.name
}

func (r *FuncRenderer) Init(_ hcl.Body) error {
	return nil
}

func (r *FuncRenderer) Render(ctx context.Context, group *table.Table) (*types.Artifact, error) {
	return r.fn(ctx, group)
}
