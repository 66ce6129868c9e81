package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/plotpipe/plotpipe-sdk/destination"
	"github.com/plotpipe/plotpipe-sdk/events"
	"github.com/plotpipe/plotpipe-sdk/observable"
	"github.com/plotpipe/plotpipe-sdk/rate_limiter"
	"github.com/plotpipe/plotpipe-sdk/render"
	"github.com/plotpipe/plotpipe-sdk/table"
)

// Request describes one export: partition Table by GroupKey, render the
// sub-table for each of KeyValues in order, and persist each artifact to
// the destination named by Naming.
//
// KeyValues is the single source of truth correlating a group's data with
// its destination name: entry i is rendered and written to Naming(i, v).
// Values absent from KeyValues are silently excluded from the export.
type Request struct {
	Table     *table.Table
	GroupKey  string
	KeyValues []string
	Renderer  render.Renderer
	Naming    destination.NamingFunc
	Sink      destination.Sink

	// optional - generated if empty
	ExportId string
}

func (r *Request) validate() error {
	if r.Table == nil || r.Table.NumRows() == 0 {
		return fmt.Errorf("a non-empty table is required")
	}
	if r.GroupKey == "" {
		return fmt.Errorf("a group key is required")
	}
	if r.Renderer == nil {
		return fmt.Errorf("a renderer is required")
	}
	if r.Naming == nil {
		return fmt.Errorf("a naming func is required")
	}
	if r.Sink == nil {
		return fmt.Errorf("a sink is required")
	}
	return nil
}

// Outcome records the result of exporting one group
type Outcome struct {
	KeyValue    string
	Destination string
	// nil on success, otherwise a *RenderError or *PersistError
	Err error
}

func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Exporter coordinates grouped artifact exports and reports lifecycle
// events to registered observers
type Exporter struct {
	observable.ObservableImpl

	failFast       bool
	maxConcurrency int
	writeLimiter   *rate_limiter.WriteLimiter
}

func New(opts ...ExportOption) *Exporter {
	e := &Exporter{
		maxConcurrency: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export partitions the request's table, renders one artifact per key value
// and persists each to its destination.
//
// Structural errors (MissingGroupError, DuplicateDestinationError, an
// unknown group key) abort the export before any write and are returned as
// the error. Render and persist failures are recorded in the per-group
// outcome and do not abort the batch, unless the exporter was built with
// WithFailFast.
func (e *Exporter) Export(ctx context.Context, req *Request) ([]Outcome, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	exportId := req.ExportId
	if exportId == "" {
		exportId = fmt.Sprintf("export-%d", time.Now().UnixNano())
	}

	grouping, err := req.Table.GroupBy(req.GroupKey)
	if err != nil {
		return nil, err
	}

	// structural checks first - nothing may be written if these fail
	groups, err := resolveGroups(grouping, req)
	if err != nil {
		return nil, err
	}
	destinations, err := resolveDestinations(req)
	if err != nil {
		return nil, err
	}

	slog.Info("Starting export", "export_id", exportId, "group_key", req.GroupKey, "groups", len(req.KeyValues), "sink", req.Sink.Identifier())
	_ = e.NotifyObservers(ctx, events.NewStartedEvent(exportId, len(req.KeyValues)))

	var outcomes []Outcome
	if e.maxConcurrency > 1 && !e.failFast {
		outcomes, err = e.exportParallel(ctx, exportId, req, groups, destinations)
	} else {
		outcomes, err = e.exportSerial(ctx, exportId, req, groups, destinations)
	}

	succeeded, failed := tally(outcomes)
	_ = e.NotifyObservers(ctx, events.NewCompletedEvent(exportId, succeeded, failed, err))
	slog.Info("Export complete", "export_id", exportId, "succeeded", succeeded, "failed", failed)

	return outcomes, err
}

// resolveGroups looks up the sub-table for every requested key value,
// in order, failing with MissingGroupError for a value with zero rows
func resolveGroups(grouping *table.Grouping, req *Request) ([]*table.Table, error) {
	groups := make([]*table.Table, len(req.KeyValues))
	for i, v := range req.KeyValues {
		sub, ok := grouping.Group(v)
		if !ok || sub.NumRows() == 0 {
			return nil, &MissingGroupError{GroupKey: req.GroupKey, KeyValue: v}
		}
		groups[i] = sub
	}
	return groups, nil
}

// resolveDestinations names every destination up front, failing with
// DuplicateDestinationError on a collision
func resolveDestinations(req *Request) ([]string, error) {
	destinations := make([]string, len(req.KeyValues))
	seen := make(map[string]string, len(req.KeyValues))
	for i, v := range req.KeyValues {
		d := req.Naming(i, v)
		if prev, ok := seen[d]; ok {
			return nil, &DuplicateDestinationError{Destination: d, KeyValues: []string{prev, v}}
		}
		seen[d] = v
		destinations[i] = d
	}
	return destinations, nil
}

func (e *Exporter) exportSerial(ctx context.Context, exportId string, req *Request, groups []*table.Table, destinations []string) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(req.KeyValues))
	for i, v := range req.KeyValues {
		outcome := e.exportGroup(ctx, exportId, req, v, groups[i], destinations[i])
		outcomes = append(outcomes, outcome)
		if e.failFast && outcome.Err != nil {
			return outcomes, outcome.Err
		}
	}
	return outcomes, nil
}

func (e *Exporter) exportParallel(ctx context.Context, exportId string, req *Request, groups []*table.Table, destinations []string) ([]Outcome, error) {
	outcomes := make([]Outcome, len(req.KeyValues))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrency)
	for i, v := range req.KeyValues {
		i, v := i, v
		g.Go(func() error {
			outcomes[i] = e.exportGroup(groupCtx, exportId, req, v, groups[i], destinations[i])
			// per-group failures are recorded, not returned - they must not
			// cancel sibling groups
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

// exportGroup renders one group and persists the artifact to its destination
func (e *Exporter) exportGroup(ctx context.Context, exportId string, req *Request, keyValue string, group *table.Table, dest string) Outcome {
	outcome := Outcome{KeyValue: keyValue, Destination: dest}

	artifact, err := req.Renderer.Render(ctx, group)
	if err != nil {
		outcome.Err = &RenderError{KeyValue: keyValue, Err: err}
		_ = e.NotifyObservers(ctx, events.NewErrorEvent(exportId, keyValue, outcome.Err))
		return outcome
	}
	// tag the artifact with the group it was rendered from
	artifact.Label = keyValue
	_ = e.NotifyObservers(ctx, events.NewArtifactRenderedEvent(exportId, keyValue))

	if e.writeLimiter != nil {
		if err := e.writeLimiter.Wait(ctx); err != nil {
			outcome.Err = &PersistError{KeyValue: keyValue, Destination: dest, Err: err}
			_ = e.NotifyObservers(ctx, events.NewErrorEvent(exportId, keyValue, outcome.Err))
			return outcome
		}
		defer e.writeLimiter.Release()
	}

	if err := req.Sink.Put(ctx, dest, artifact); err != nil {
		outcome.Err = &PersistError{KeyValue: keyValue, Destination: dest, Err: err}
		_ = e.NotifyObservers(ctx, events.NewErrorEvent(exportId, keyValue, outcome.Err))
		return outcome
	}

	_ = e.NotifyObservers(ctx, events.NewArtifactPersistedEvent(exportId, keyValue, dest))
	return outcome
}

func tally(outcomes []Outcome) (succeeded, failed int) {
	for _, o := range outcomes {
		if o.Succeeded() {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
