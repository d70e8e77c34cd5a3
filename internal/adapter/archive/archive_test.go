package archive

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	key, bucket, contentType string
	body                     []byte
	err                      error
}

func (f *fakePutter) PutObject(
	_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	f.contentType = aws.ToString(in.ContentType)
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func newTestArchiver(f *fakePutter, prefix string) *S3Archiver {
	a := newS3Archiver(f, "backups", prefix)
	a.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 30, 5, 250_000_000, time.UTC)
	}
	return a
}

func TestS3Archiver_ArchiveConfig(t *testing.T) {
	f := new(fakePutter)
	a := newTestArchiver(f, "/ecom-admin/")

	key, err := a.ArchiveConfig(t.Context(), []byte(`{"version":1}`))
	require.NoError(t, err)

	assert.Equal(t, "ecom-admin/config/20260301T123005.250Z.json", key)
	assert.Equal(t, key, f.key)
	assert.Equal(t, "backups", f.bucket)
	assert.Equal(t, "application/json", f.contentType)
	assert.Equal(t, `{"version":1}`, string(f.body))
}

func TestS3Archiver_ArchiveReport(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		filename string
		want     string
	}{
		{"WithPrefix", "admin", "orders-2026-02.csv", "admin/reports/orders/orders-2026-02.csv"},
		{"NoPrefix", "", "orders.csv", "reports/orders/orders.csv"},
		{"PathInFilename", "admin", "../../etc/orders.csv", "admin/reports/orders/orders.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := new(fakePutter)
			a := newTestArchiver(f, tt.prefix)

			key, err := a.ArchiveReport(t.Context(), domain.ExportOrders, domain.Report{
				Filename: tt.filename, ContentType: "text/csv", Data: []byte("id\n"),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
			assert.Equal(t, "text/csv", f.contentType)
		})
	}
}

func TestS3Archiver_PutError(t *testing.T) {
	errS3 := errors.New("access denied")
	a := newTestArchiver(&fakePutter{err: errS3}, "admin")

	_, err := a.ArchiveConfig(t.Context(), []byte(`{}`))
	assert.ErrorIs(t, err, errS3)
}
