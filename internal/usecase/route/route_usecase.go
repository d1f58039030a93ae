package route

import (
	"context"
	"fmt"
	"strings"

	"github.com/gdugdh24/godate-backend/internal/domain"
	"github.com/gdugdh24/godate-backend/internal/repository"
	"github.com/sirupsen/logrus"
)

// UseCase owns the route catalog: CRUD, likes with the 10-like rating
// award, and favorites.
type UseCase struct {
	routeRepo repository.RouteRepository
}

func NewUseCase(routeRepo repository.RouteRepository) *UseCase {
	return &UseCase{
		routeRepo: routeRepo,
	}
}

// CreateInput represents route creation/update payload
type CreateInput struct {
	Title       string              `json:"title" binding:"required,max=100"`
	Description string              `json:"description" binding:"max=500"`
	City        string              `json:"city" binding:"required,max=50"`
	TimeMinutes int                 `json:"time_minutes" binding:"min=0"`
	Budget      int                 `json:"budget" binding:"min=0"`
	Points      []domain.RoutePoint `json:"points"`
}

// LikeInput identifies the route to like or favorite
type LikeInput struct {
	RouteID int `json:"route_id" binding:"required"`
}

// RoutePublic is a route with its live like count and decoded points.
type RoutePublic struct {
	ID          int                 `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	City        string              `json:"city"`
	TimeMinutes int                 `json:"time_minutes"`
	Budget      int                 `json:"budget"`
	Likes       int                 `json:"likes"`
	Points      []domain.RoutePoint `json:"points"`
}

func toPublic(r *domain.Route, likes int) *RoutePublic {
	return &RoutePublic{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		City:        r.City,
		TimeMinutes: r.TimeMinutes,
		Budget:      r.Budget,
		Likes:       likes,
		Points:      r.Points(),
	}
}

func toPublicList(routes []*repository.RouteWithLikes) []*RoutePublic {
	result := make([]*RoutePublic, 0, len(routes))
	for _, r := range routes {
		route := r.Route
		result = append(result, toPublic(&route, r.Likes))
	}
	return result
}

// Create persists a new route owned by the caller; point order is kept.
func (uc *UseCase) Create(ctx context.Context, ownerID int, in *CreateInput) (*domain.Route, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.City) == "" {
		return nil, domain.ErrInvalidInput
	}

	route := &domain.Route{
		CreatorUserID: &ownerID,
		Title:         in.Title,
		Description:   in.Description,
		City:          in.City,
		TimeMinutes:   in.TimeMinutes,
		Budget:        in.Budget,
	}
	if err := route.SetPoints(in.Points); err != nil {
		return nil, fmt.Errorf("failed to encode points: %w", err)
	}

	if err := uc.routeRepo.Create(ctx, route); err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}
	return route, nil
}

// List returns all routes, newest first, optionally filtered by city.
func (uc *UseCase) List(ctx context.Context, city *string) ([]*RoutePublic, error) {
	routes, err := uc.routeRepo.List(ctx, city)
	if err != nil {
		return nil, err
	}
	return toPublicList(routes), nil
}

// Mine returns the caller's own routes, newest first.
func (uc *UseCase) Mine(ctx context.Context, ownerID int) ([]*RoutePublic, error) {
	routes, err := uc.routeRepo.ListByCreator(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return toPublicList(routes), nil
}

// getOwned fetches a route and hides it behind NotFound unless the caller
// owns it.
func (uc *UseCase) getOwned(ctx context.Context, ownerID, routeID int) (*domain.Route, error) {
	route, err := uc.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if !route.IsOwnedBy(ownerID) {
		return nil, domain.ErrRouteNotFound
	}
	return route, nil
}

// Get returns a single owned route with its like count.
func (uc *UseCase) Get(ctx context.Context, ownerID, routeID int) (*RoutePublic, error) {
	route, err := uc.getOwned(ctx, ownerID, routeID)
	if err != nil {
		return nil, err
	}
	likes, err := uc.routeRepo.CountLikes(ctx, routeID)
	if err != nil {
		return nil, err
	}
	return toPublic(route, likes), nil
}

// Update replaces an owned route's fields and points.
func (uc *UseCase) Update(ctx context.Context, ownerID, routeID int, in *CreateInput) error {
	route, err := uc.getOwned(ctx, ownerID, routeID)
	if err != nil {
		return err
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.City) == "" {
		return domain.ErrInvalidInput
	}

	route.Title = in.Title
	route.Description = in.Description
	route.City = in.City
	route.TimeMinutes = in.TimeMinutes
	route.Budget = in.Budget
	if err := route.SetPoints(in.Points); err != nil {
		return fmt.Errorf("failed to encode points: %w", err)
	}

	return uc.routeRepo.Update(ctx, route)
}

// Delete removes an owned route; its likes and favorites go with it.
func (uc *UseCase) Delete(ctx context.Context, ownerID, routeID int) error {
	if _, err := uc.getOwned(ctx, ownerID, routeID); err != nil {
		return err
	}
	return uc.routeRepo.Delete(ctx, routeID)
}

// Like records a like and converts complete 10-like blocks across all of
// the owner's routes into rating.
func (uc *UseCase) Like(ctx context.Context, userID, routeID int) error {
	route, err := uc.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		return err
	}
	if route.IsOwnedBy(userID) {
		return domain.ErrOwnRouteLike
	}

	if err := uc.routeRepo.CreateLike(ctx, routeID, userID); err != nil {
		return err
	}

	// System-seeded routes have no creator and award nothing.
	if route.CreatorUserID == nil {
		return nil
	}

	delta, err := uc.routeRepo.AwardForLikes(ctx, *route.CreatorUserID)
	if err != nil {
		return fmt.Errorf("failed to award likes rating: %w", err)
	}
	if delta > 0 {
		logrus.WithFields(logrus.Fields{
			"owner_id": *route.CreatorUserID,
			"delta":    delta,
		}).Info("likes award credited")
	}
	return nil
}

// Favorite adds the route to the user's favorites; repeats succeed.
func (uc *UseCase) Favorite(ctx context.Context, userID, routeID int) error {
	if _, err := uc.routeRepo.GetByID(ctx, routeID); err != nil {
		return err
	}
	return uc.routeRepo.AddFavorite(ctx, userID, routeID)
}

// Unfavorite removes the favorite; removing a non-existent one succeeds.
func (uc *UseCase) Unfavorite(ctx context.Context, userID, routeID int) error {
	return uc.routeRepo.RemoveFavorite(ctx, userID, routeID)
}

// Favorites returns the user's favorited routes with live like counts.
func (uc *UseCase) Favorites(ctx context.Context, userID int) ([]*RoutePublic, error) {
	routes, err := uc.routeRepo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toPublicList(routes), nil
}

// PurgeAll wipes every route with its likes and favorites. Admin only.
func (uc *UseCase) PurgeAll(ctx context.Context, current *domain.User) error {
	if !current.IsAdmin {
		return domain.ErrForbidden
	}
	return uc.routeRepo.PurgeAll(ctx)
}
