package archive

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

var _ port.Archiver = (*S3Archiver)(nil)

const keyTimeLayout = "20060102T150405.000Z"

type objectPutter interface {
	PutObject(
		ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)
}

// Config of the S3 bucket. Endpoint is set for S3-compatible stores such
// as MinIO, it enables path-style addressing.
type Config struct {
	Bucket   string
	Prefix   string
	Region   string
	Endpoint string
}

// S3Archiver keeps config backups and exported reports in an S3 bucket.
type S3Archiver struct {
	client objectPutter
	bucket string
	prefix string
	now    func() time.Time
}

func NewS3Archiver(ctx context.Context, cfg Config) (*S3Archiver, error) {
	const op = "NewS3Archiver"

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("%s: load AWS config: %w", op, err)
	}

	var s3opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3opts = append(s3opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	return newS3Archiver(s3.NewFromConfig(awsCfg, s3opts...), cfg.Bucket, cfg.Prefix), nil
}

func newS3Archiver(client objectPutter, bucket, prefix string) *S3Archiver {
	return &S3Archiver{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		now:    time.Now,
	}
}

// ArchiveConfig stores a site configuration backup under
// "<prefix>/config/<timestamp>.json".
func (a *S3Archiver) ArchiveConfig(ctx context.Context, backup []byte) (string, error) {
	const op = "S3Archiver.ArchiveConfig"

	key := path.Join(a.prefix, "config", a.now().UTC().Format(keyTimeLayout)+".json")
	if err := a.put(ctx, key, "application/json", backup); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return key, nil
}

// ArchiveReport stores a report under "<prefix>/reports/<kind>/<filename>".
func (a *S3Archiver) ArchiveReport(
	ctx context.Context, kind domain.ExportKind, r domain.Report,
) (string, error) {
	const op = "S3Archiver.ArchiveReport"

	key := path.Join(a.prefix, "reports", string(kind), path.Base("/"+r.Filename))
	if err := a.put(ctx, key, r.ContentType, r.Data); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return key, nil
}

func (a *S3Archiver) put(ctx context.Context, key, contentType string, data []byte) error {
	log := slog.With("op", "S3Archiver.put", "bucket", a.bucket, "key", key)

	in := &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := a.client.PutObject(ctx, in); err != nil {
		return fmt.Errorf("s3 put object: %w", err)
	}
	log.Debug("object stored", "size", len(data))
	return nil
}
