package handler

import (
	"net/http"
	"strconv"

	"github.com/gdugdh24/godate-backend/internal/usecase/rating"
	"github.com/gdugdh24/godate-backend/internal/usecase/route"
	"github.com/gin-gonic/gin"
)

type RouteHandler struct {
	routeUseCase  *route.UseCase
	ratingUseCase *rating.UseCase
}

func NewRouteHandler(routeUseCase *route.UseCase, ratingUseCase *rating.UseCase) *RouteHandler {
	return &RouteHandler{
		routeUseCase:  routeUseCase,
		ratingUseCase: ratingUseCase,
	}
}

func routeID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("route_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Некорректные данные"})
		return 0, false
	}
	return id, true
}

// List returns all routes, optionally filtered by city
// @Summary List routes
// @Tags routes
// @Produce json
// @Param city query string false "City filter"
// @Success 200 {array} route.RoutePublic
// @Router /routes [get]
func (h *RouteHandler) List(c *gin.Context) {
	var city *string
	if v, exists := c.GetQuery("city"); exists && v != "" {
		city = &v
	}

	routes, err := h.routeUseCase.List(c.Request.Context(), city)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, routes)
}

// Create stores a new route owned by the caller
// @Summary Create route
// @Tags routes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body route.CreateInput true "Route data"
// @Success 200 {object} OkResponse
// @Failure 400 {object} ErrorResponse
// @Router /routes [post]
func (h *RouteHandler) Create(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	var req route.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Некорректные данные маршрута"})
		return
	}

	if _, err := h.routeUseCase.Create(c.Request.Context(), current.ID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ok())
}

// Mine returns the caller's routes
// @Summary My routes
// @Tags routes
// @Security BearerAuth
// @Produce json
// @Success 200 {array} route.RoutePublic
// @Router /routes/mine [get]
func (h *RouteHandler) Mine(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	routes, err := h.routeUseCase.Mine(c.Request.Context(), current.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, routes)
}

// Get returns one of the caller's routes
// @Summary Get route
// @Tags routes
// @Security BearerAuth
// @Produce json
// @Param route_id path int true "Route ID"
// @Success 200 {object} route.RoutePublic
// @Failure 404 {object} ErrorResponse
// @Router /routes/{route_id} [get]
func (h *RouteHandler) Get(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}
	id, parsed := routeID(c)
	if !parsed {
		return
	}

	resp, err := h.routeUseCase.Get(c.Request.Context(), current.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update replaces one of the caller's routes
// @Summary Update route
// @Tags routes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param route_id path int true "Route ID"
// @Param request body route.CreateInput true "Route data"
// @Success 200 {object} OkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /routes/{route_id} [put]
func (h *RouteHandler) Update(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}
	id, parsed := routeID(c)
	if !parsed {
		return
	}

	var req route.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Некорректные данные маршрута"})
		return
	}

	if err := h.routeUseCase.Update(c.Request.Context(), current.ID, id, &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ok())
}

// Delete removes one of the caller's routes
// @Summary Delete route
// @Tags routes
// @Security BearerAuth
// @Produce json
// @Param route_id path int true "Route ID"
// @Success 200 {object} OkResponse
// @Failure 404 {object} ErrorResponse
// @Router /routes/{route_id} [delete]
func (h *RouteHandler) Delete(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}
	id, parsed := routeID(c)
	if !parsed {
		return
	}

	if err := h.routeUseCase.Delete(c.Request.Context(), current.ID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ok())
}

// Like records a like on someone else's route
// @Summary Like route
// @Tags routes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body route.LikeInput true "Route id"
// @Success 200 {object} OkResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /routes/like [post]
func (h *RouteHandler) Like(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	var req route.LikeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Некорректные данные"})
		return
	}

	if err := h.routeUseCase.Like(c.Request.Context(), current.ID, req.RouteID); err != nil {
		respondError(c, err)
		return
	}

	// The like may have crossed an award threshold.
	h.ratingUseCase.Invalidate(c.Request.Context())

	c.JSON(http.StatusOK, ok())
}

// Favorite adds a route to the caller's favorites
// @Summary Add favorite
// @Tags routes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body route.LikeInput true "Route id"
// @Success 200 {object} OkResponse
// @Failure 404 {object} ErrorResponse
// @Router /routes/favorite [post]
func (h *RouteHandler) Favorite(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	var req route.LikeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Некорректные данные"})
		return
	}

	if err := h.routeUseCase.Favorite(c.Request.Context(), current.ID, req.RouteID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ok())
}

// Unfavorite removes a route from the caller's favorites
// @Summary Remove favorite
// @Tags routes
// @Security BearerAuth
// @Produce json
// @Param route_id path int true "Route ID"
// @Success 200 {object} OkResponse
// @Router /routes/favorite/{route_id} [delete]
func (h *RouteHandler) Unfavorite(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}
	id, parsed := routeID(c)
	if !parsed {
		return
	}

	if err := h.routeUseCase.Unfavorite(c.Request.Context(), current.ID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ok())
}

// Favorites returns the caller's favorited routes
// @Summary List favorites
// @Tags routes
// @Security BearerAuth
// @Produce json
// @Success 200 {array} route.RoutePublic
// @Router /routes/favorites [get]
func (h *RouteHandler) Favorites(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	routes, err := h.routeUseCase.Favorites(c.Request.Context(), current.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, routes)
}

// PurgeAll wipes the whole catalog, admin only
// @Summary Delete all routes
// @Tags routes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} OkResponse
// @Failure 403 {object} ErrorResponse
// @Router /routes/all [delete]
func (h *RouteHandler) PurgeAll(c *gin.Context) {
	current, authed := currentUser(c)
	if !authed {
		return
	}

	if err := h.routeUseCase.PurgeAll(c.Request.Context(), current); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ok())
}
