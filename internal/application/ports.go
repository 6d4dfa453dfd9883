package application

import (
	"context"
	"time"

	"github.com/oksasatya/peopledesk/internal/domain/entity"
)

// Collaborator contracts the services depend on. Concrete implementations
// live under internal/infrastructure; tests substitute in-memory fakes.

// OTPResult is the outcome of a Consume call against the OTP cache.
type OTPResult int

const (
	OTPMatched OTPResult = iota
	OTPMismatch
	OTPMissing
)

// OTPCache is the ephemeral key-value store holding in-flight OTP codes,
// keyed by email. At most one live code exists per email; Put replaces any
// previous one. Consume must be atomic: a matching code is deleted in the
// same step that reads it, a mismatching one is left untouched.
type OTPCache interface {
	Put(ctx context.Context, email, code string, ttl time.Duration) error
	Consume(ctx context.Context, email, code string) (OTPResult, error)
	Delete(ctx context.Context, email string) error
}

// EmailQueue publishes email jobs for the worker to deliver.
type EmailQueue interface {
	PublishJSON(ctx context.Context, body any) error
}

// ObjectStore mediates object-storage access for profile pictures.
type ObjectStore interface {
	// SignedUploadURL returns a time-limited pre-authorized PUT URL for key.
	SignedUploadURL(key, contentType string, ttl time.Duration) (string, error)
	// PublicURL derives the public download URL for key.
	PublicURL(key string) string
	// KeyForURL inverts PublicURL; ok is false for URLs outside our bucket.
	KeyForURL(url string) (key string, ok bool)
	Delete(ctx context.Context, key string) error
}

// UserIndex keeps the search index in sync with profile changes.
// Implementations must tolerate being absent; services skip indexing when nil.
type UserIndex interface {
	Index(ctx context.Context, u *entity.User) error
	Search(ctx context.Context, q string, size int) ([]map[string]any, error)
}
