package exporter

import (
	"fmt"
)

// MissingGroupError indicates a requested key value matched no rows in the
// table. This is a caller contract violation so the export aborts before
// any writes.
type MissingGroupError struct {
	GroupKey string
	KeyValue string
}

func (e *MissingGroupError) Error() string {
	return fmt.Sprintf("no rows with %s = '%s'", e.GroupKey, e.KeyValue)
}

// DuplicateDestinationError indicates the naming func produced the same
// destination identifier for two different groups. The export aborts before
// any writes.
type DuplicateDestinationError struct {
	Destination string
	KeyValues   []string
}

func (e *DuplicateDestinationError) Error() string {
	return fmt.Sprintf("destination '%s' produced for multiple key values %v", e.Destination, e.KeyValues)
}

// RenderError wraps a failure of the rendering capability, attributed to
// the offending group
type RenderError struct {
	KeyValue string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("error rendering group '%s': %s", e.KeyValue, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// PersistError wraps a failure of the persist step, attributed to the
// offending destination
type PersistError struct {
	KeyValue    string
	Destination string
	Err         error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("error persisting group '%s' to '%s': %s", e.KeyValue, e.Destination, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
