package tools

import (
	"context"
	"fmt"

	gcs "cloud.google.com/go/storage"
)

// Checks that the bucket exists and the service can read its metadata
func CheckStorageBucket(c context.Context, storage *gcs.Client, bucket string) error {
	if _, err := storage.Bucket(bucket).Attrs(c); err != nil {
		return fmt.Errorf("bucket.Attrs(%s): %w", bucket, err)
	}
	return nil
}
