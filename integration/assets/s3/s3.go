package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/gatekit/gatekit/core/assets"
)

// Compile-time check that Store implements the asset store contract.
var _ assets.Store = (*Store)(nil)

// ErrInvalidConfig indicates a missing bucket or region.
var ErrInvalidConfig = errors.New("s3 assets: bucket and region are required")

// Client defines the S3 operations used by Store.
type Client interface {
	GetObject(ctx context.Context, params *s3aws.GetObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.GetObjectOutput, error)
}

// Store serves assets from an S3 bucket. Thread-safe; every Open is a
// single GetObject round trip.
type Store struct {
	client Client
	bucket string
	prefix string
}

// Config contains the S3 connection settings.
type Config struct {
	Bucket      string
	Region      string
	AccessKeyID string
	SecretKey   string

	// Endpoint overrides the AWS endpoint for S3-compatible services
	// like MinIO or Wasabi.
	Endpoint string

	// ForcePathStyle is required for MinIO and some S3-compatible services.
	ForcePathStyle bool

	// KeyPrefix is prepended to every lookup key, confining the store to a
	// subtree of the bucket.
	KeyPrefix string
}

// Option configures the Store.
type Option func(*options)

type options struct {
	httpClient    *http.Client
	configOptions []func(*config.LoadOptions) error
	clientOptions []func(*s3aws.Options)
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
// Useful for custom timeout, proxy, or TLS configuration.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithConfigOption adds a custom AWS config option.
func WithConfigOption(option func(*config.LoadOptions) error) Option {
	return func(o *options) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithClientOption adds a custom S3 client option.
func WithClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// New creates an S3-backed asset store. Credentials fall back to the
// standard AWS resolution chain when not set on Config.
func New(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	awsOptions := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOptions = append(awsOptions,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretKey,
				"",
			)),
		)
	}
	if o.httpClient != nil {
		awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
	}
	awsOptions = append(awsOptions, o.configOptions...)

	awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3aws.NewFromConfig(awsConfig, func(so *s3aws.Options) {
		if cfg.Endpoint != "" {
			so.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		so.UsePathStyle = cfg.ForcePathStyle

		for _, opt := range o.clientOptions {
			opt(so)
		}
	})

	return NewWithClient(client, cfg.Bucket, cfg.KeyPrefix), nil
}

// NewWithClient creates a store around a pre-configured client. Primarily
// used for testing with mocks.
func NewWithClient(client Client, bucket, keyPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(keyPrefix, "/"),
	}
}

// Open implements assets.Store. Keys are cleaned before lookup; traversal
// outside the configured prefix is rejected as not found.
func (s *Store) Open(ctx context.Context, key string) (*assets.Asset, error) {
	name := path.Clean(strings.TrimPrefix(key, "/"))
	if name == "." || name == ".." || strings.HasPrefix(name, "../") {
		return nil, fmt.Errorf("%w: %q", assets.ErrNotFound, key)
	}
	if s.prefix != "" {
		name = s.prefix + "/" + name
	}

	out, err := s.client.GetObject(ctx, &s3aws.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return nil, classifyError(err, key)
	}
	defer func() { _ = out.Body.Close() }()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read asset %q: %w", key, err)
	}

	contentType := aws.ToString(out.ContentType)
	if contentType == "" || contentType == "application/octet-stream" {
		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			contentType = ct
		}
	}

	return &assets.Asset{
		Content:     content,
		ContentType: contentType,
	}, nil
}
