package writers

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"path"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"primerscan/internal/table"
)

func init() {
	Register("s3", func(ctx context.Context, u *url.URL, o Options) (Sink, error) {
		return OpenS3FromEnv(ctx, u.Host, strings.TrimPrefix(u.Path, "/"), o)
	})
}

// S3Config holds explicit construction parameters.
type S3Config struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string // optional; e.g. MinIO
	PathStyle bool
}

// Environment variables:
//
//	PRIMERSCAN_S3_REGION=<region> (default us-east-1)
//	PRIMERSCAN_S3_ENDPOINT=<url> (optional, for MinIO)
//	PRIMERSCAN_S3_PATH_STYLE=true|false (default false)
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN (optional)
func OpenS3FromEnv(ctx context.Context, bucket, prefix string, o Options) (*S3Sink, error) {
	return NewS3Sink(ctx, S3Config{
		Bucket:    bucket,
		Prefix:    prefix,
		Region:    os.Getenv("PRIMERSCAN_S3_REGION"),
		Endpoint:  os.Getenv("PRIMERSCAN_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("PRIMERSCAN_S3_PATH_STYLE"), "true"),
	}, o)
}

// S3Sink stores each table as one object; PutObject overwrites in place.
type S3Sink struct {
	client *s3.Client
	bucket string
	prefix string
	delim  rune
}

func NewS3Sink(ctx context.Context, cfg S3Config, o Options) (*S3Sink, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(so *s3.Options) {
		so.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			so.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return newS3Sink(client, cfg.Bucket, cfg.Prefix, o), nil
}

func newS3Sink(client *s3.Client, bucket, prefix string, o Options) *S3Sink {
	return &S3Sink{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/"), delim: o.Delimiter}
}

func (s *S3Sink) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

func (s *S3Sink) Location(name string) string {
	return "s3://" + s.bucket + "/" + s.key(name)
}

func (s *S3Sink) WriteTable(ctx context.Context, t *table.Table) error {
	body, err := t.Bytes(s.delim)
	if err != nil {
		return err
	}
	key := s.key(t.Name)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}
	return nil
}

func (s *S3Sink) Close() error { return nil }
