package handler

import (
	"net/http"

	"github.com/gdugdh24/godate-backend/internal/usecase/rating"
	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingUseCase *rating.UseCase
}

func NewRatingHandler(ratingUseCase *rating.UseCase) *RatingHandler {
	return &RatingHandler{
		ratingUseCase: ratingUseCase,
	}
}

// Leaderboard returns all users ordered by rating
// @Summary Global rating
// @Tags rating
// @Produce json
// @Success 200 {array} rating.Item
// @Router /rating [get]
func (h *RatingHandler) Leaderboard(c *gin.Context) {
	items, err := h.ratingUseCase.Leaderboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
