package types

import (
	"bytes"
	"fmt"
	"io"
)

// Artifact is a rendered output object, ready to be persisted to a destination.
// The content is opaque to the exporter - it is simply streamed to the sink.
type Artifact struct {
	// Label identifies the group the artifact was rendered from
	// - it is set by the exporter to the group key value
	Label string

	// Extension is the suggested file extension, including the leading dot, e.g. ".png"
	Extension string

	// Content writes the rendered output
	Content io.WriterTo
}

func NewArtifact(content io.WriterTo, extension string) *Artifact {
	return &Artifact{
		Extension: extension,
		Content:   content,
	}
}

// NewArtifactFromBytes wraps a byte slice as an artifact
func NewArtifactFromBytes(data []byte, extension string) *Artifact {
	return NewArtifact(bytes.NewReader(data), extension)
}

// Bytes buffers the artifact content into memory
// - used by sinks whose client needs an io.Reader or a known length
func (a *Artifact) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := a.Content.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("error buffering artifact content: %w", err)
	}
	return buf.Bytes(), nil
}
