package application

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture() (*ProfileService, *fakeUserRepo, *fakeStore, *fakeIndex) {
	users := newFakeUserRepo()
	store := &fakeStore{}
	index := &fakeIndex{}
	return NewProfileService(users, store, index, testLogger()), users, store, index
}

func TestGetProfile(t *testing.T) {
	svc, users, _, _ := newProfileFixture()
	u := seedUser(t, users, "carol@example.com")

	got, err := svc.GetProfile(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", got.Email)

	_, err = svc.GetProfile("no-such-id")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, users, _, index := newProfileFixture()
	u := seedUser(t, users, "carol@example.com")
	ctx := context.Background()

	name := "Carol Renamed"
	got, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Carol Renamed", got.Name)

	// a nil pointer leaves the field untouched
	pic := "https://cdn.example.com/profile-pictures/x/y.png"
	got, err = svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{ProfilePicture: &pic})
	require.NoError(t, err)
	assert.Equal(t, "Carol Renamed", got.Name)
	assert.Equal(t, pic, got.ProfilePicture)

	// a pointer to the empty string clears it
	empty := ""
	got, err = svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{ProfilePicture: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", got.ProfilePicture)

	assert.Len(t, index.indexed, 3)
}

func TestGenerateUploadURL(t *testing.T) {
	svc, users, _, _ := newProfileFixture()
	u := seedUser(t, users, "carol@example.com")
	ctx := context.Background()

	uploadURL, fileKey, err := svc.GenerateUploadURL(ctx, u.ID, "Avatar.PNG", "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(fileKey, "profile-pictures/"+u.ID+"/"))
	assert.True(t, strings.HasSuffix(fileKey, ".png"), "extension is lowercased: %s", fileKey)
	assert.Equal(t, "https://upload.example.com/"+fileKey, uploadURL)

	// keys are unique per request
	_, fileKey2, err := svc.GenerateUploadURL(ctx, u.ID, "Avatar.PNG", "image/png")
	require.NoError(t, err)
	assert.NotEqual(t, fileKey, fileKey2)

	_, _, err = svc.GenerateUploadURL(ctx, "no-such-id", "a.png", "image/png")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestConfirmProfilePicture(t *testing.T) {
	svc, users, store, _ := newProfileFixture()
	u := seedUser(t, users, "carol@example.com")
	ctx := context.Background()

	got, err := svc.ConfirmProfilePicture(ctx, u.ID, "profile-pictures/"+u.ID+"/first.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/profile-pictures/"+u.ID+"/first.png", got.ProfilePicture)
	assert.Empty(t, store.deleted)

	// replacing the picture deletes the previous object
	got, err = svc.ConfirmProfilePicture(ctx, u.ID, "profile-pictures/"+u.ID+"/second.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/profile-pictures/"+u.ID+"/second.png", got.ProfilePicture)
	require.Len(t, store.deleted, 1)
	assert.Equal(t, "profile-pictures/"+u.ID+"/first.png", store.deleted[0])
}

func TestConfirmProfilePictureForeignURLUntouched(t *testing.T) {
	svc, users, store, _ := newProfileFixture()
	u := seedUser(t, users, "carol@example.com")
	ctx := context.Background()

	// a picture hosted outside our bucket is never deleted
	ext := "https://elsewhere.example.org/pic.png"
	_, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileInput{ProfilePicture: &ext})
	require.NoError(t, err)

	_, err = svc.ConfirmProfilePicture(ctx, u.ID, "profile-pictures/"+u.ID+"/new.png")
	require.NoError(t, err)
	assert.Empty(t, store.deleted)
}

func TestSearchUsers(t *testing.T) {
	svc, _, _, index := newProfileFixture()
	ctx := context.Background()

	index.results = []map[string]any{
		{"email": "carol@example.com", "name": "Carol"},
		{"email": "carlos@example.com", "name": "Carlos"},
	}

	hits, err := svc.SearchUsers(ctx, "car", 10)
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = svc.SearchUsers(ctx, "car", 1)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestSearchUsersNoIndex(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewProfileService(users, &fakeStore{}, nil, testLogger())

	hits, err := svc.SearchUsers(context.Background(), "anything", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
