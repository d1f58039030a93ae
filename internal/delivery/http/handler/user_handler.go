package handler

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gdugdh24/godate-backend/internal/usecase/social"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	socialUseCase *social.UseCase
	uploadsPath   string
}

func NewUserHandler(socialUseCase *social.UseCase, uploadsPath string) *UserHandler {
	return &UserHandler{
		socialUseCase: socialUseCase,
		uploadsPath:   uploadsPath,
	}
}

// Me returns the authenticated user's profile
// @Summary Get my profile
// @Description Profile with soulmate and derived friends list
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} social.Profile
// @Failure 401 {object} ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	profile, err := h.socialUseCase.GetProfile(c.Request.Context(), current)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Logout acknowledges logout; the token lives client-side and simply
// gets discarded there
// @Summary Logout
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} OkResponse
// @Router /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	if _, authed := currentUser(c); !authed {
		return
	}
	c.JSON(http.StatusOK, ok())
}

// UpdateAvatar stores an uploaded avatar and records its public URL
// @Summary Upload avatar
// @Tags users
// @Security BearerAuth
// @Accept mpfd
// @Produce json
// @Param file formData file true "Avatar image"
// @Success 200 {object} OkResponse
// @Failure 400 {object} ErrorResponse
// @Router /users/avatar [post]
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Файл не найден"})
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	filename := fmt.Sprintf("avatar_%d_%s%s", current.ID, uuid.NewString(), ext)

	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadsPath, filename)); err != nil {
		respondError(c, err)
		return
	}

	publicURL := "/uploads/" + filename
	if err := h.socialUseCase.UpdateAvatar(c.Request.Context(), current.ID, publicURL); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ok())
}

// SendRequest creates a friend or soulmate request
// @Summary Send friend/soulmate request
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body social.SendRequestInput true "Target and type"
// @Success 200 {object} OkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/request [post]
func (h *UserHandler) SendRequest(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	var req social.SendRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Некорректные данные"})
		return
	}

	if err := h.socialUseCase.SendRequest(c.Request.Context(), current, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ok())
}

// RemoveSoulmate clears the mutual soulmate link
// @Summary Remove soulmate
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} OkResponse
// @Failure 400 {object} ErrorResponse
// @Router /users/soulmate [delete]
func (h *UserHandler) RemoveSoulmate(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	if err := h.socialUseCase.RemoveSoulmate(c.Request.Context(), current); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ok())
}

// RemoveFriend deletes an accepted friendship
// @Summary Remove friend
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body social.RemoveFriendInput true "Friend id"
// @Success 200 {object} OkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/friend [delete]
func (h *UserHandler) RemoveFriend(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	var req social.RemoveFriendInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "ID друга не указан"})
		return
	}

	if err := h.socialUseCase.RemoveFriend(c.Request.Context(), current, req.FriendID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ok())
}
