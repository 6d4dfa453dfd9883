package application

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/peopledesk/internal/domain/entity"
	repo "github.com/oksasatya/peopledesk/internal/domain/repository"
)

// UploadURLTTL bounds how long an issued pre-signed upload URL stays valid.
const UploadURLTTL = 15 * time.Minute

// ProfileService reads and mutates the authenticated user's profile and
// mediates object-storage access for profile pictures.
type ProfileService struct {
	Repo   repo.UserRepository
	Store  ObjectStore
	Index  UserIndex
	Logger *logrus.Logger
}

func NewProfileService(r repo.UserRepository, store ObjectStore, index UserIndex, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Repo: r, Store: store, Index: index, Logger: logger}
}

func (s *ProfileService) GetProfile(userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateProfileInput is a partial update: nil pointers mean "leave the field
// untouched", as opposed to a pointer to the empty string which clears it.
type UpdateProfileInput struct {
	Name           *string
	ProfilePicture *string
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.ProfilePicture != nil {
		u.ProfilePicture = *in.ProfilePicture
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	s.indexUser(ctx, u)
	s.Logger.WithField("user_id", userID).Info("profile updated")
	return u, nil
}

// GenerateUploadURL verifies the user exists, derives a storage key scoped to
// the user, and requests a time-limited pre-authorized PUT URL. The profile
// itself is not mutated until the upload is confirmed.
func (s *ProfileService) GenerateUploadURL(ctx context.Context, userID, fileName, contentType string) (uploadURL, fileKey string, err error) {
	if _, err = s.GetProfile(userID); err != nil {
		return "", "", err
	}
	ext := strings.ToLower(filepath.Ext(fileName))
	fileKey = "profile-pictures/" + userID + "/" + uuid.NewString() + ext
	uploadURL, err = s.Store.SignedUploadURL(fileKey, contentType, UploadURLTTL)
	if err != nil {
		return "", "", err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": userID, "file_key": fileKey}).Info("generated upload URL")
	return uploadURL, fileKey, nil
}

// ConfirmProfilePicture persists the public URL for an uploaded fileKey onto
// the profile. The previously stored picture is deleted best-effort when it
// lives in our bucket.
func (s *ProfileService) ConfirmProfilePicture(ctx context.Context, userID, fileKey string) (*entity.User, error) {
	u, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if old := u.ProfilePicture; old != "" {
		if oldKey, ok := s.Store.KeyForURL(old); ok {
			if err := s.Store.Delete(ctx, oldKey); err != nil {
				s.Logger.WithError(err).WithField("key", oldKey).Warn("failed to delete old profile picture")
			}
		}
	}

	u.ProfilePicture = s.Store.PublicURL(fileKey)
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	s.indexUser(ctx, u)
	s.Logger.WithField("user_id", userID).Info("profile picture updated")
	return u, nil
}

// SearchUsers runs a full-text search over indexed profiles. Returns empty
// results when no index is configured.
func (s *ProfileService) SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.Index == nil {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	return s.Index.Search(ctx, q, size)
}

func (s *ProfileService) indexUser(ctx context.Context, u *entity.User) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, u); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("user index failed")
	}
}
