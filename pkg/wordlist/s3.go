package wordlist

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client is the subset of the S3 API used by S3Loader.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config describes where word lists live in S3.
type S3Config struct {
	Bucket         string `env:"WORDLIST_S3_BUCKET"`
	Region         string `env:"WORDLIST_S3_REGION" envDefault:"us-east-1"`
	Prefix         string `env:"WORDLIST_S3_PREFIX"`           // Key prefix, e.g. "wordlists/"
	Extension      string `env:"WORDLIST_S3_EXTENSION"`        // Appended to every key, e.g. ".txt"
	AccessKeyID    string `env:"WORDLIST_S3_ACCESS_KEY_ID"`    // Optional static credentials
	SecretKey      string `env:"WORDLIST_S3_SECRET_KEY"`       // Optional static credentials
	Endpoint       string `env:"WORDLIST_S3_ENDPOINT"`         // Optional: S3-compatible services
	ForcePathStyle bool   `env:"WORDLIST_S3_FORCE_PATH_STYLE"` // For MinIO and friends
}

// S3Option configures S3Loader construction.
type S3Option func(*s3Options)

type s3Options struct {
	client     S3Client
	httpClient *http.Client
}

// WithS3Client uses a pre-configured client instead of building one from the
// default AWS configuration chain. Useful for tests.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) { o.client = client }
}

// WithS3HTTPClient sets the HTTP client used by the AWS SDK.
func WithS3HTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) { o.httpClient = client }
}

// S3Loader loads lists stored as S3 objects, one object per list.
// It is safe for concurrent use.
type S3Loader struct {
	client S3Client
	bucket string
	prefix string
	ext    string
}

// NewS3Loader builds an S3 loader. Without WithS3Client the client is built
// from the default AWS configuration chain, with static credentials when
// cfg provides them.
func NewS3Loader(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Loader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", ErrInvalidConfig)
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.client
	if client == nil {
		if cfg.Region == "" {
			return nil, fmt.Errorf("%w: region is required", ErrInvalidConfig)
		}
		awsOptions := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		if options.httpClient != nil {
			awsOptions = append(awsOptions, awsconfig.WithHTTPClient(options.httpClient))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &S3Loader{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		ext:    cfg.Extension,
	}, nil
}

// Load implements Loader.
func (l *S3Loader) Load(ctx context.Context, name string) ([]string, error) {
	if name == "" || strings.Contains(name, "..") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	key := l.prefix + name + l.ext

	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, classifyS3Error(err, name)
	}
	defer out.Body.Close()

	values, err := Parse(out.Body)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", name, err)
	}
	return values, nil
}

func classifyS3Error(err error, name string) error {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %q", ErrListNotFound, name)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %q", ErrListNotFound, name)
		default:
			return errors.Join(ErrLoadFailed, fmt.Errorf("list %q (code: %s): %w", name, apiErr.ErrorCode(), err))
		}
	}
	return errors.Join(ErrLoadFailed, fmt.Errorf("list %q: %w", name, err))
}
