package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/godate-backend/internal/domain"
	"github.com/gdugdh24/godate-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type routeRepository struct {
	db *sqlx.DB
}

func NewRouteRepository(db *sqlx.DB) repository.RouteRepository {
	return &routeRepository{db: db}
}

func (r *routeRepository) Create(ctx context.Context, route *domain.Route) error {
	query := `
		INSERT INTO routes (creator_user_id, title, description, city, time_minutes, budget, points_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		route.CreatorUserID, route.Title, route.Description, route.City,
		route.TimeMinutes, route.Budget, route.PointsJSON,
	).Scan(&route.ID, &route.CreatedAt)
}

func (r *routeRepository) GetByID(ctx context.Context, id int) (*domain.Route, error) {
	var route domain.Route
	query := `SELECT * FROM routes WHERE id = $1`
	err := r.db.GetContext(ctx, &route, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRouteNotFound
		}
		return nil, err
	}
	return &route, nil
}

func (r *routeRepository) List(ctx context.Context, city *string) ([]*repository.RouteWithLikes, error) {
	var routes []*repository.RouteWithLikes

	// Like counts come from a single aggregated query instead of a count
	// per route.
	query := `
		SELECT r.*, COUNT(l.id) AS likes
		FROM routes r
		LEFT JOIN route_likes l ON l.route_id = r.id
	`
	args := []interface{}{}
	if city != nil && *city != "" {
		query += ` WHERE r.city = $1`
		args = append(args, *city)
	}
	query += `
		GROUP BY r.id
		ORDER BY r.created_at DESC
	`

	err := r.db.SelectContext(ctx, &routes, query, args...)
	return routes, err
}

func (r *routeRepository) ListByCreator(ctx context.Context, creatorID int) ([]*repository.RouteWithLikes, error) {
	var routes []*repository.RouteWithLikes
	query := `
		SELECT r.*, COUNT(l.id) AS likes
		FROM routes r
		LEFT JOIN route_likes l ON l.route_id = r.id
		WHERE r.creator_user_id = $1
		GROUP BY r.id
		ORDER BY r.created_at DESC
	`
	err := r.db.SelectContext(ctx, &routes, query, creatorID)
	return routes, err
}

func (r *routeRepository) CountLikes(ctx context.Context, routeID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM route_likes WHERE route_id = $1`
	err := r.db.GetContext(ctx, &count, query, routeID)
	return count, err
}

func (r *routeRepository) Update(ctx context.Context, route *domain.Route) error {
	query := `
		UPDATE routes
		SET title = $1, description = $2, city = $3, time_minutes = $4, budget = $5, points_json = $6
		WHERE id = $7
	`
	result, err := r.db.ExecContext(ctx, query,
		route.Title, route.Description, route.City,
		route.TimeMinutes, route.Budget, route.PointsJSON, route.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRouteNotFound
	}
	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM route_likes WHERE route_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM favorite_routes WHERE route_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRouteNotFound
	}

	return tx.Commit()
}

func (r *routeRepository) PurgeAll(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, query := range []string{
		`DELETE FROM route_likes`,
		`DELETE FROM favorite_routes`,
		`DELETE FROM routes`,
	} {
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *routeRepository) CreateLike(ctx context.Context, routeID, userID int) error {
	query := `INSERT INTO route_likes (route_id, user_id) VALUES ($1, $2)`
	_, err := r.db.ExecContext(ctx, query, routeID, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyLiked
		}
		return err
	}
	return nil
}

func (r *routeRepository) AwardForLikes(ctx context.Context, ownerID int) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	// Recompute from the current totals rather than incrementing blindly,
	// so concurrent or repeated recomputation converges on the same value.
	var totalLikes int
	countQuery := `
		SELECT COUNT(*)
		FROM route_likes l
		JOIN routes r ON r.id = l.route_id
		WHERE r.creator_user_id = $1
	`
	if err := tx.QueryRowContext(ctx, countQuery, ownerID).Scan(&totalLikes); err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO likes_award (user_id, awarded_count) VALUES ($1, 0) ON CONFLICT (user_id) DO NOTHING`,
		ownerID,
	); err != nil {
		return 0, err
	}

	var awarded int
	if err := tx.QueryRowContext(ctx,
		`SELECT awarded_count FROM likes_award WHERE user_id = $1 FOR UPDATE`,
		ownerID,
	).Scan(&awarded); err != nil {
		return 0, err
	}

	eligible := totalLikes / domain.LikesPerAward
	if eligible <= awarded {
		return 0, tx.Commit()
	}
	delta := eligible - awarded

	if _, err := tx.ExecContext(ctx,
		`UPDATE likes_award SET awarded_count = $1 WHERE user_id = $2`,
		eligible, ownerID,
	); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET rating = rating + $1 WHERE id = $2`,
		delta, ownerID,
	); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return delta, nil
}

func (r *routeRepository) AddFavorite(ctx context.Context, userID, routeID int) error {
	query := `
		INSERT INTO favorite_routes (user_id, route_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, route_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, userID, routeID)
	return err
}

func (r *routeRepository) RemoveFavorite(ctx context.Context, userID, routeID int) error {
	// Removing an absent favorite is deliberately not an error.
	query := `DELETE FROM favorite_routes WHERE user_id = $1 AND route_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, routeID)
	return err
}

func (r *routeRepository) ListFavorites(ctx context.Context, userID int) ([]*repository.RouteWithLikes, error) {
	var routes []*repository.RouteWithLikes
	query := `
		SELECT r.*, COUNT(l.id) AS likes
		FROM favorite_routes f
		JOIN routes r ON r.id = f.route_id
		LEFT JOIN route_likes l ON l.route_id = r.id
		WHERE f.user_id = $1
		GROUP BY r.id, f.created_at
		ORDER BY f.created_at DESC
	`
	err := r.db.SelectContext(ctx, &routes, query, userID)
	return routes, err
}
