package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	"github.com/lac-hong-legacy/edu_api/dto"
	"github.com/lac-hong-legacy/edu_api/services/repositories"
	"github.com/lac-hong-legacy/edu_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const MaxAvatarSize = 2 << 20

var (
	ErrStorageDisabled = errors.New("object storage not configured")
	errAvatarType      = errors.New("unsupported avatar type")
	errAvatarSize      = errors.New("avatar too large")
)

var avatarTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ObjectStore is the slice of MinIOService the profile code needs.
type ObjectStore interface {
	UploadFile(objectName string, reader io.Reader, objectSize int64, contentType string) (string, error)
	DeleteFile(objectName string) error
	ObjectName(url string) (string, bool)
}

type UserService struct {
	context.DefaultService

	users *repositories.UserRepository
	store ObjectStore
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *UserService) Start() error {
	svc.users = svc.Service(DATABASE_SVC).(*DatabaseService).Users()
	if minioSvc, ok := svc.Service(MINIO_SVC).(*MinIOService); ok && minioSvc.Enabled() {
		svc.store = minioSvc
	}
	return nil
}

func NewUserService(users *repositories.UserRepository, store ObjectStore) *UserService {
	return &UserService{users: users, store: store}
}

func (svc *UserService) GetUserProfile(userID string) (*dto.UserProfileResponse, error) {
	user, err := svc.users.GetUserWithStudent(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, shared.NewInternalError(err)
	}

	return &dto.UserProfileResponse{
		UserInfo:  joinedUserInfo(user),
		Username:  user.Username,
		JoinedAt:  user.CreatedAt,
		LastLogin: user.LastLogin,
	}, nil
}

// UploadAvatar stores an image under avatars/<user>/ and points the user's
// avatar_url at it. The previous avatar is removed on a best-effort basis.
func (svc *UserService) UploadAvatar(userID, contentType string, size int64, body io.Reader) (*dto.AvatarUploadResponse, error) {
	if svc.store == nil {
		return nil, shared.NewAppError(http.StatusServiceUnavailable, "File uploads are not available", ErrStorageDisabled)
	}

	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	ext, ok := avatarTypes[contentType]
	if !ok {
		return nil, shared.NewBadRequestError(errAvatarType, "Avatar must be a PNG, JPEG, WebP or GIF image")
	}
	if size <= 0 || size > MaxAvatarSize {
		return nil, shared.NewBadRequestError(errAvatarSize, fmt.Sprintf("Avatar must be at most %d KB", MaxAvatarSize>>10))
	}

	user, err := svc.users.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, shared.NewInternalError(err)
	}

	objectName := path.Join("avatars", userID, uuid.NewString()+ext)
	url, err := svc.store.UploadFile(objectName, body, size, contentType)
	if err != nil {
		log.WithFields(log.Fields{"user_id": userID, "error": err.Error()}).Error("Avatar upload failed")
		return nil, shared.NewInternalError(err)
	}

	if err := svc.users.UpdateAvatar(userID, url); err != nil {
		_ = svc.store.DeleteFile(objectName)
		return nil, shared.NewInternalError(err)
	}

	if old, ok := svc.store.ObjectName(user.AvatarURL); ok {
		if err := svc.store.DeleteFile(old); err != nil {
			log.WithFields(log.Fields{"user_id": userID, "object": old}).Warn("Failed to remove previous avatar")
		}
	}

	return &dto.AvatarUploadResponse{AvatarURL: url, Size: size}, nil
}
