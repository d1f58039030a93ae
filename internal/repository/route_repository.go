package repository

import (
	"context"

	"github.com/gdugdh24/godate-backend/internal/domain"
)

// RouteWithLikes is a route annotated with its current like count.
type RouteWithLikes struct {
	domain.Route
	Likes int `db:"likes"`
}

type RouteRepository interface {
	Create(ctx context.Context, route *domain.Route) error
	GetByID(ctx context.Context, id int) (*domain.Route, error)
	List(ctx context.Context, city *string) ([]*RouteWithLikes, error)
	ListByCreator(ctx context.Context, creatorID int) ([]*RouteWithLikes, error)
	CountLikes(ctx context.Context, routeID int) (int, error)
	Update(ctx context.Context, route *domain.Route) error

	// Delete removes the route together with its likes and favorites.
	Delete(ctx context.Context, id int) error

	// PurgeAll removes every route and all like/favorite rows.
	PurgeAll(ctx context.Context) error

	// CreateLike fails with domain.ErrAlreadyLiked on a duplicate
	// (route, user) pair.
	CreateLike(ctx context.Context, routeID, userID int) error

	// AwardForLikes recomputes the owner's likes award from the current
	// like total across all their routes and credits the rating delta, all
	// in one transaction. Returns the delta (zero when nothing new is due).
	AwardForLikes(ctx context.Context, ownerID int) (int, error)

	// AddFavorite is idempotent: re-adding an existing favorite succeeds
	// without creating a duplicate.
	AddFavorite(ctx context.Context, userID, routeID int) error

	// RemoveFavorite is idempotent: removing an absent favorite succeeds.
	RemoveFavorite(ctx context.Context, userID, routeID int) error

	ListFavorites(ctx context.Context, userID int) ([]*RouteWithLikes, error)
}
