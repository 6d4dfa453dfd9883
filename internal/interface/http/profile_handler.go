package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/peopledesk/internal/application"
	"github.com/oksasatya/peopledesk/pkg/response"
	"github.com/oksasatya/peopledesk/pkg/validation"
)

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

// updateProfileRequest uses pointer fields so an absent key is distinguishable
// from a key set to the empty string.
type updateProfileRequest struct {
	Name           *string `json:"name"`
	ProfilePicture *string `json:"profile_picture"`
}

type uploadURLRequest struct {
	FileName    string `json:"file_name" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

type confirmPictureRequest struct {
	FileKey string `json:"file_key" binding:"required"`
}

// GetProfile GET /api/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := h.Svc.GetProfile(uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "profile", nil)
}

// UpdateProfile PATCH /api/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		Name:           req.Name,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "profile updated", nil)
}

// UploadURL POST /api/profile/upload-url
func (h *ProfileHandler) UploadURL(c *gin.Context) {
	uid := c.GetString("userID")
	var req uploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	uploadURL, fileKey, err := h.Svc.GenerateUploadURL(c.Request.Context(), uid, req.FileName, req.ContentType)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"upload_url": uploadURL,
		"file_key":   fileKey,
	}, "upload URL generated", nil)
}

// ConfirmPicture POST /api/profile/picture
func (h *ProfileHandler) ConfirmPicture(c *gin.Context) {
	uid := c.GetString("userID")
	var req confirmPictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.ConfirmProfilePicture(c.Request.Context(), uid, req.FileKey)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "profile picture updated", nil)
}

// Search GET /api/users/search?q=...&size=...
func (h *ProfileHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	res, err := h.Svc.SearchUsers(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Warn("user search failed")
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, res, "search results", gin.H{"count": len(res)})
}
