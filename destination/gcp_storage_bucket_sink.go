package destination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"cloud.google.com/go/storage"
	"github.com/hashicorp/hcl/v2"
	"google.golang.org/api/option"

	"github.com/plotpipe/plotpipe-sdk/parse"
	"github.com/plotpipe/plotpipe-sdk/types"
)

const GcpStorageBucketSinkIdentifier = "gcp_storage_bucket"

// register the sink from the package init function
func init() {
	Factory.RegisterSinks(NewGcpStorageBucketSink)
}

type GcpStorageBucketSinkConfig struct {
	Bucket string  `hcl:"bucket"`
	Prefix *string `hcl:"prefix,optional"`
	// path to a service account credentials file; application default
	// credentials are used when unset
	Credentials *string `hcl:"credentials,optional"`
}

func (c *GcpStorageBucketSinkConfig) Identifier() string {
	return GcpStorageBucketSinkIdentifier
}

func (c *GcpStorageBucketSinkConfig) Validate() error {
	if c.Bucket == "" {
		return errors.New("bucket is required")
	}
	return nil
}

// GcpStorageBucketSink is a [Sink] implementation that writes artifacts to a GCP Storage bucket
type GcpStorageBucketSink struct {
	Config *GcpStorageBucketSinkConfig
	client *storage.Client
}

func NewGcpStorageBucketSink() Sink {
	return &GcpStorageBucketSink{Config: &GcpStorageBucketSinkConfig{}}
}

func (s *GcpStorageBucketSink) Identifier() string {
	return GcpStorageBucketSinkIdentifier
}

func (s *GcpStorageBucketSink) Init(ctx context.Context, body hcl.Body) error {
	if err := parse.DecodeBody(body, s.Config); err != nil {
		return err
	}

	var clientOpts []option.ClientOption
	if s.Config.Credentials != nil {
		clientOpts = append(clientOpts, option.WithCredentialsFile(*s.Config.Credentials))
	}
	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return fmt.Errorf("error creating storage client: %w", err)
	}
	s.client = client

	slog.Info("Initialized GcpStorageBucketSink", "bucket", s.Config.Bucket, "prefix", s.Config.Prefix)
	return nil
}

func (s *GcpStorageBucketSink) Put(ctx context.Context, destination string, artifact *types.Artifact) error {
	key := destination
	if s.Config.Prefix != nil {
		key = path.Join(*s.Config.Prefix, destination)
	}

	w := s.client.Bucket(s.Config.Bucket).Object(key).NewWriter(ctx)
	if _, err := artifact.Content.WriteTo(w); err != nil {
		// best effort close, the write error is the one to report
		_ = w.Close()
		return fmt.Errorf("error writing gs://%s/%s: %w", s.Config.Bucket, key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("error writing gs://%s/%s: %w", s.Config.Bucket, key, err)
	}

	slog.Debug("GcpStorageBucketSink wrote artifact", "bucket", s.Config.Bucket, "key", key, "label", artifact.Label)
	return nil
}

func (s *GcpStorageBucketSink) Close() error {
	return s.client.Close()
}
