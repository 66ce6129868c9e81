package destination

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/plotpipe/plotpipe-sdk/types"
)

// Sink persists artifacts to destinations.
// Destinations are caller-derived identifiers (typically file names); the
// sink maps them into whatever namespace it writes to.
type Sink interface {
	Identifier() string
	// Init decodes the sink config from an HCL body and establishes any client
	Init(ctx context.Context, body hcl.Body) error
	// Put persists the artifact under the given destination identifier
	Put(ctx context.Context, destination string, artifact *types.Artifact) error
	Close() error
}
