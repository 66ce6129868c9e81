package destination

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hashicorp/hcl/v2"

	"github.com/plotpipe/plotpipe-sdk/parse"
	"github.com/plotpipe/plotpipe-sdk/types"
)

const (
	AwsS3BucketSinkIdentifier = "aws_s3_bucket"
	defaultBucketRegion       = "us-east-1"
)

// register the sink from the package init function
func init() {
	Factory.RegisterSinks(NewAwsS3BucketSink)
}

type AwsS3BucketSinkConfig struct {
	Bucket       string  `hcl:"bucket"`
	Prefix       *string `hcl:"prefix,optional"`
	Region       *string `hcl:"region,optional"`
	Profile      *string `hcl:"profile,optional"`
	AccessKey    string  `hcl:"access_key,optional"`
	SecretKey    string  `hcl:"secret_key,optional"`
	SessionToken string  `hcl:"session_token,optional"`
}

func (c *AwsS3BucketSinkConfig) Identifier() string {
	return AwsS3BucketSinkIdentifier
}

func (c *AwsS3BucketSinkConfig) Validate() error {
	if c.Bucket == "" {
		return errors.New("bucket is required")
	}
	if c.AccessKey != "" && c.SecretKey == "" {
		return errors.New("access_key set without secret_key")
	}
	if c.AccessKey == "" && c.SecretKey != "" {
		return errors.New("secret_key set without access_key")
	}
	return nil
}

// AwsS3BucketSink is a [Sink] implementation that writes artifacts to an S3 bucket
type AwsS3BucketSink struct {
	Config *AwsS3BucketSinkConfig
	client *s3.Client
}

func NewAwsS3BucketSink() Sink {
	return &AwsS3BucketSink{Config: &AwsS3BucketSinkConfig{}}
}

func (s *AwsS3BucketSink) Identifier() string {
	return AwsS3BucketSinkIdentifier
}

func (s *AwsS3BucketSink) Init(ctx context.Context, body hcl.Body) error {
	if err := parse.DecodeBody(body, s.Config); err != nil {
		return err
	}

	if s.Config.Region == nil {
		slog.Info("No region set, using default", "region", defaultBucketRegion)
		s.Config.Region = aws.String(defaultBucketRegion)
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return err
	}
	s.client = client

	slog.Info("Initialized AwsS3BucketSink", "bucket", s.Config.Bucket, "prefix", s.Config.Prefix)
	return nil
}

func (s *AwsS3BucketSink) Put(ctx context.Context, destination string, artifact *types.Artifact) error {
	key := destination
	if s.Config.Prefix != nil {
		key = path.Join(*s.Config.Prefix, destination)
	}

	// the S3 client needs a seekable body, so buffer the artifact content
	data, err := artifact.Bytes()
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.Config.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("error writing s3://%s/%s: %w", s.Config.Bucket, key, err)
	}

	slog.Debug("AwsS3BucketSink wrote artifact", "bucket", s.Config.Bucket, "key", key, "label", artifact.Label)
	return nil
}

func (s *AwsS3BucketSink) Close() error {
	return nil
}

func (s *AwsS3BucketSink) getClient(ctx context.Context) (*s3.Client, error) {
	var opts []func(*config.LoadOptions) error
	// add credentials if provided
	if s.Config.AccessKey != "" && s.Config.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.Config.AccessKey, s.Config.SecretKey, s.Config.SessionToken)))
	}
	if s.Config.Profile != nil {
		opts = append(opts, config.WithSharedConfigProfile(*s.Config.Profile))
	}
	opts = append(opts, config.WithRegion(*s.Config.Region))

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %w", err)
	}

	return s3.NewFromConfig(cfg), nil
}
