package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/edu_api/middleware"
	"github.com/lac-hong-legacy/edu_api/shared"
)

type UserHandler struct {
	userSvc UserServiceInterface
}

func NewUserHandler(userSvc UserServiceInterface) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

// @Summary Get user profile
// @Description Get the profile of the current user
// @Tags user
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.UserProfileResponse}
// @Router /api/v1/users/me [get]
func (h *UserHandler) GetUserProfile(c *fiber.Ctx) error {
	profile, err := h.userSvc.GetUserProfile(middleware.CurrentUserID(c))
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Success", profile)
}

// @Summary Upload avatar
// @Description Upload a png, jpeg, webp or gif avatar of at most 2 MiB
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} shared.Response{data=dto.AvatarUploadResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/users/me/avatar [post]
func (h *UserHandler) UploadAvatar(c *fiber.Ctx) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return shared.NewBadRequestError(err, "No avatar file provided")
	}

	f, err := file.Open()
	if err != nil {
		return shared.NewBadRequestError(err, "Could not read avatar file")
	}
	defer f.Close()

	resp, err := h.userSvc.UploadAvatar(middleware.CurrentUserID(c), file.Header.Get("Content-Type"), file.Size, f)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, fiber.StatusOK, "Avatar uploaded successfully", resp)
}
