package objectstore

import (
	"context"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/oksasatya/peopledesk/internal/application"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty,
// Application Default Credentials are used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// GCSStore implements the object-storage port on top of a GCS bucket using
// V4 signed URLs for uploads.
type GCSStore struct {
	client *storage.Client
	bucket string
}

func NewGCSStore(client *storage.Client, bucket string) *GCSStore {
	return &GCSStore{client: client, bucket: bucket}
}

func (s *GCSStore) SignedUploadURL(key, contentType string, ttl time.Duration) (string, error) {
	opts := &storage.SignedURLOptions{
		Scheme:      storage.SigningSchemeV4,
		Method:      http.MethodPut,
		ContentType: contentType,
		Expires:     time.Now().Add(ttl),
	}
	return s.client.Bucket(s.bucket).SignedURL(key, opts)
}

func (s *GCSStore) PublicURL(key string) string {
	return "https://storage.googleapis.com/" + s.bucket + "/" + key
}

// KeyForURL inverts PublicURL; URLs pointing outside our bucket report ok=false.
func (s *GCSStore) KeyForURL(url string) (string, bool) {
	prefix := "https://storage.googleapis.com/" + s.bucket + "/"
	key, found := strings.CutPrefix(url, prefix)
	if !found || key == "" {
		return "", false
	}
	return key, true
}

func (s *GCSStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.client.Bucket(s.bucket).Object(key).Delete(ctx)
}

var _ application.ObjectStore = (*GCSStore)(nil)
