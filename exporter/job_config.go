package exporter

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/plotpipe/plotpipe-sdk/constants"
	"github.com/plotpipe/plotpipe-sdk/destination"
	"github.com/plotpipe/plotpipe-sdk/parse"
	"github.com/plotpipe/plotpipe-sdk/render"
	"github.com/plotpipe/plotpipe-sdk/table"
)

// JobConfig is the HCL form of an export job:
//
//	group_key         = "cyl"
//	key_values        = ["4", "6", "8"]
//	filename_template = "%{key_value}.png"
//
//	renderer "scatter" {
//	  x = "hp"
//	  y = "mpg"
//	}
//
//	destination "file_system" {
//	  path = "./charts"
//	}
type JobConfig struct {
	GroupKey         string   `hcl:"group_key"`
	KeyValues        []string `hcl:"key_values"`
	FilenameTemplate *string  `hcl:"filename_template,optional"`

	Renderer    *RendererBlock    `hcl:"renderer,block"`
	Destination *DestinationBlock `hcl:"destination,block"`
}

type RendererBlock struct {
	Type   string   `hcl:"type,label"`
	Config hcl.Body `hcl:",remain"`
}

type DestinationBlock struct {
	Type   string   `hcl:"type,label"`
	Config hcl.Body `hcl:",remain"`
}

func (j *JobConfig) Identifier() string {
	return "export"
}

func (j *JobConfig) Validate() error {
	if j.GroupKey == "" {
		return errors.New("group_key is required")
	}
	if len(j.KeyValues) == 0 {
		return errors.New("key_values is required")
	}
	if j.Destination == nil {
		return errors.New("a destination block is required")
	}
	return nil
}

// ParseJob decodes an export job definition from HCL
func ParseJob(data *parse.Data) (*JobConfig, error) {
	return parse.ParseConfig[*JobConfig](data)
}

// ToRequest resolves the job into an executable Request for the given table.
// A programmatic renderer may be passed to override the job's renderer
// block; one or the other must be provided.
func (j *JobConfig) ToRequest(ctx context.Context, tbl *table.Table, r render.Renderer) (*Request, error) {
	if r == nil {
		if j.Renderer == nil {
			return nil, errors.New("no renderer block in job config and no renderer supplied")
		}
		renderer, err := render.Factory.GetRenderer(j.Renderer.Type)
		if err != nil {
			return nil, err
		}
		if err := renderer.Init(j.Renderer.Config); err != nil {
			return nil, fmt.Errorf("error initializing '%s' renderer: %w", j.Renderer.Type, err)
		}
		r = renderer
	}

	sink, err := destination.Factory.GetSink(j.Destination.Type)
	if err != nil {
		return nil, err
	}
	if err := sink.Init(ctx, j.Destination.Config); err != nil {
		return nil, fmt.Errorf("error initializing '%s' sink: %w", j.Destination.Type, err)
	}

	template := constants.DefaultFilenameTemplate
	if j.FilenameTemplate != nil {
		template = *j.FilenameTemplate
	}

	return &Request{
		Table:     tbl,
		GroupKey:  j.GroupKey,
		KeyValues: j.KeyValues,
		Renderer:  r,
		Naming:    destination.TemplateNaming(template),
		Sink:      sink,
	}, nil
}
