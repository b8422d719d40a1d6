package slot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Config configures the S3 driver. Credentials come from the default AWS
// chain (environment, shared config, instance role).
type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // optional, for MinIO and other S3-compatible stores
	Prefix    string `yaml:"prefix"`
	PathStyle bool   `yaml:"path_style"`
}

// S3 is a slot stored as a single object. PutObject replaces objects
// atomically, so readers see either the old or the new value.
type S3 struct {
	client *s3.Client
	bucket string
	key    string
}

// OpenS3 builds an S3 client from cfg. The object key is cfg.Prefix/key.json.
func OpenS3(ctx context.Context, cfg S3Config, key string) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 slot: bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &S3{client: client, bucket: cfg.Bucket, key: ObjectKey(cfg.Prefix, key)}, nil
}

// ObjectKey returns the object key used for a slot key.
func ObjectKey(prefix, key string) string {
	return path.Join(prefix, key+".json")
}

// Load downloads the object.
func (s *S3) Load(ctx context.Context) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &s.key})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("loading slot object %q: %w", s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading slot object %q: %w", s.key, err)
	}
	return data, nil
}

// Save uploads the object.
func (s *S3) Save(ctx context.Context, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &s.key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("saving slot object %q: %w", s.key, err)
	}
	return nil
}

func (s *S3) Close() error { return nil }
