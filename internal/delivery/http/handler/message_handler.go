package handler

import (
	"net/http"

	"github.com/gdugdh24/godate-backend/internal/usecase/social"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	socialUseCase *social.UseCase
}

func NewMessageHandler(socialUseCase *social.UseCase) *MessageHandler {
	return &MessageHandler{
		socialUseCase: socialUseCase,
	}
}

// List returns pending requests grouped by direction
// @Summary List pending requests
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} social.Messages
// @Failure 401 {object} ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	messages, err := h.socialUseCase.ListMessages(c.Request.Context(), current.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

// Act accepts or declines a pending request
// @Summary Act on request
// @Tags messages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body social.ActInput true "Request id and action"
// @Success 200 {object} OkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /messages/act [post]
func (h *MessageHandler) Act(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	var req social.ActInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Некорректное действие"})
		return
	}

	if err := h.socialUseCase.Act(c.Request.Context(), current, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ok())
}
