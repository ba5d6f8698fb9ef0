package archive

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type GCSArchiver struct {
	client *storage.Client
	bucket string
}

func NewGCSArchiver(ctx context.Context, bucket, credentialsFile string) (*GCSArchiver, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS storage client: %w", err)
	}

	return &GCSArchiver{
		client: client,
		bucket: bucket,
	}, nil
}

// ArchiveImage uploads the image under a timestamp-derived name and returns
// its public URL. The bucket is expected to allow public reads.
func (a *GCSArchiver) ArchiveImage(ctx context.Context, data []byte) (string, error) {
	name := fmt.Sprintf("verification_%d.png", time.Now().UnixMilli())

	w := a.client.Bucket(a.bucket).Object(name).NewWriter(ctx)
	w.ContentType = "image/png"

	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write image to GCS object %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer for %s: %w", name, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", a.bucket, name), nil
}

func (a *GCSArchiver) Close() error {
	return a.client.Close()
}
