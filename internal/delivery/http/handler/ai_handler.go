package handler

import (
	"net/http"

	"github.com/gdugdh24/godate-backend/internal/usecase/aigen"
	"github.com/gdugdh24/godate-backend/internal/usecase/recommend"
	"github.com/gin-gonic/gin"
)

type AIHandler struct {
	aigenUseCase     *aigen.UseCase
	recommendUseCase *recommend.UseCase
}

func NewAIHandler(aigenUseCase *aigen.UseCase, recommendUseCase *recommend.UseCase) *AIHandler {
	return &AIHandler{
		aigenUseCase:     aigenUseCase,
		recommendUseCase: recommendUseCase,
	}
}

// Generate asks the external model for a date itinerary
// @Summary Generate itinerary
// @Tags ai
// @Accept json
// @Produce json
// @Param request body aigen.GenerateRequest true "Itinerary parameters"
// @Success 200 {object} aigen.GenerateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /ai/generate [post]
func (h *AIHandler) Generate(c *gin.Context) {
	var req aigen.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Некорректные данные"})
		return
	}

	resp, err := h.aigenUseCase.Generate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Recommend returns the deterministic stub day plan
// @Summary Recommend places
// @Tags ai
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body recommend.Request true "Plan parameters"
// @Success 200 {object} recommend.Response
// @Failure 400 {object} ErrorResponse
// @Router /recommendations [post]
func (h *AIHandler) Recommend(c *gin.Context) {
	if _, authed := currentUser(c); !authed {
		return
	}

	var req recommend.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Некорректные данные"})
		return
	}

	c.JSON(http.StatusOK, h.recommendUseCase.Plan(&req))
}
