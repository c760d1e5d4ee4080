package content

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// ObjectGetter is the slice of the S3 API the loader uses.
// Satisfied by *s3.Client.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

const defaultMaxObjectSize = 1 << 20 // 1MB

// S3Option configures an S3 loader.
type S3Option func(*s3Loader)

// WithMaxObjectSize caps how much of the object is read (default 1MB).
// Objects exceeding the cap fail the load.
func WithMaxObjectSize(n int64) S3Option {
	return func(l *s3Loader) {
		if n > 0 {
			l.maxSize = n
		}
	}
}

type s3Loader struct {
	client  ObjectGetter
	bucket  string
	key     string
	maxSize int64
}

// S3 returns a loader that fetches view markup from an S3 object.
//
// Example:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	loader := content.S3(s3.NewFromConfig(cfg), "my-bucket", "views/home.html")
//	r.Register("/", loader)
func S3(client ObjectGetter, bucket, key string, opts ...S3Option) router.Loader {
	l := &s3Loader{
		client:  client,
		bucket:  bucket,
		key:     key,
		maxSize: defaultMaxObjectSize,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l.load
}

func (l *s3Loader) load(ctx context.Context) (router.Content, error) {
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(l.key),
	})
	if err != nil {
		return "", fmt.Errorf("s3 fetch %s/%s: %w", l.bucket, l.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, l.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("s3 read %s/%s: %w", l.bucket, l.key, err)
	}
	if int64(len(data)) > l.maxSize {
		return "", fmt.Errorf("s3 object %s/%s exceeds %d bytes", l.bucket, l.key, l.maxSize)
	}

	return router.Content(data), nil
}
