package handler

import (
	"net/http"

	"github.com/gdugdh24/godate-backend/internal/usecase/daily"
	"github.com/gdugdh24/godate-backend/internal/usecase/rating"
	"github.com/gin-gonic/gin"
)

type DailyHandler struct {
	dailyUseCase  *daily.UseCase
	ratingUseCase *rating.UseCase
}

func NewDailyHandler(dailyUseCase *daily.UseCase, ratingUseCase *rating.UseCase) *DailyHandler {
	return &DailyHandler{
		dailyUseCase:  dailyUseCase,
		ratingUseCase: ratingUseCase,
	}
}

// Today returns the shared task of the day and the caller's completion
// @Summary Today's task
// @Tags dailies
// @Security BearerAuth
// @Produce json
// @Success 200 {object} daily.TodayResponse
// @Failure 401 {object} ErrorResponse
// @Router /dailies/today [get]
func (h *DailyHandler) Today(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	resp, err := h.dailyUseCase.Today(c.Request.Context(), current.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Complete marks today's task done and credits the reward
// @Summary Complete today's task
// @Tags dailies
// @Security BearerAuth
// @Produce json
// @Success 200 {object} daily.CompleteResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /dailies/complete [post]
func (h *DailyHandler) Complete(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	resp, err := h.dailyUseCase.Complete(c.Request.Context(), current.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Rating changed, the cached leaderboard is stale.
	h.ratingUseCase.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, resp)
}
