package services

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/lac-hong-legacy/edu_api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	objects   map[string][]byte
	deleted   []string
	uploadErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}}
}

func (m *memoryStore) UploadFile(objectName string, reader io.Reader, objectSize int64, contentType string) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	b, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	m.objects[objectName] = b
	return "http://cdn.test/edu-platform/" + objectName, nil
}

func (m *memoryStore) DeleteFile(objectName string) error {
	m.deleted = append(m.deleted, objectName)
	delete(m.objects, objectName)
	return nil
}

func (m *memoryStore) ObjectName(url string) (string, bool) {
	const prefix = "http://cdn.test/edu-platform/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

func TestUploadAvatarReplacesPrevious(t *testing.T) {
	env := newTestEnv(t)
	store := newMemoryStore()
	userSvc := NewUserService(env.dbSvc.Users(), store)
	user, _ := testutil.SeedStudent(t, env.db, "ada", "lovelace", 0)

	img := []byte("png-bytes")
	first, err := userSvc.UploadAvatar(user.ID, "image/png", int64(len(img)), bytes.NewReader(img))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first.AvatarURL, "http://cdn.test/edu-platform/avatars/"+user.ID+"/"))
	assert.True(t, strings.HasSuffix(first.AvatarURL, ".png"))
	assert.Len(t, store.objects, 1)

	second, err := userSvc.UploadAvatar(user.ID, "image/jpeg; charset=binary", int64(len(img)), bytes.NewReader(img))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(second.AvatarURL, ".jpg"))
	assert.Len(t, store.objects, 1)
	require.Len(t, store.deleted, 1)

	profile, err := userSvc.GetUserProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, second.AvatarURL, profile.AvatarURL)
}

func TestUploadAvatarValidation(t *testing.T) {
	env := newTestEnv(t)
	user, _ := testutil.SeedStudent(t, env.db, "ada", "lovelace", 0)
	userSvc := NewUserService(env.dbSvc.Users(), newMemoryStore())

	_, err := userSvc.UploadAvatar(user.ID, "application/pdf", 10, bytes.NewReader(make([]byte, 10)))
	requireAppError(t, err, http.StatusBadRequest, "")

	_, err = userSvc.UploadAvatar(user.ID, "image/png", MaxAvatarSize+1, bytes.NewReader(nil))
	requireAppError(t, err, http.StatusBadRequest, "")

	_, err = userSvc.UploadAvatar("missing", "image/png", 10, bytes.NewReader(make([]byte, 10)))
	requireAppError(t, err, http.StatusNotFound, "User not found")

	failing := newMemoryStore()
	failing.uploadErr = errors.New("bucket gone")
	_, err = NewUserService(env.dbSvc.Users(), failing).UploadAvatar(user.ID, "image/png", 10, bytes.NewReader(make([]byte, 10)))
	requireAppError(t, err, http.StatusInternalServerError, "")

	_, err = NewUserService(env.dbSvc.Users(), nil).UploadAvatar(user.ID, "image/png", 10, bytes.NewReader(make([]byte, 10)))
	appErr := requireAppError(t, err, http.StatusServiceUnavailable, "File uploads are not available")
	assert.ErrorIs(t, appErr, ErrStorageDisabled)
}
