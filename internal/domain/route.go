package domain

import (
	"encoding/json"
	"time"
)

// RoutePoint is a single stop of a route. Order within the points list is
// the visiting order.
type RoutePoint struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

type Route struct {
	ID            int       `json:"id" db:"id"`
	CreatorUserID *int      `json:"creator_user_id" db:"creator_user_id"`
	Title         string    `json:"title" db:"title"`
	Description   string    `json:"description" db:"description"`
	City          string    `json:"city" db:"city"`
	TimeMinutes   int       `json:"time_minutes" db:"time_minutes"`
	Budget        int       `json:"budget" db:"budget"`
	PointsJSON    *string   `json:"-" db:"points_json"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// Points decodes the serialized point list. A missing or malformed payload
// yields an empty list, never an error; mirrors the forgiving reads the
// listing endpoints need.
func (r *Route) Points() []RoutePoint {
	if r.PointsJSON == nil || *r.PointsJSON == "" {
		return []RoutePoint{}
	}
	var points []RoutePoint
	if err := json.Unmarshal([]byte(*r.PointsJSON), &points); err != nil {
		return []RoutePoint{}
	}
	if points == nil {
		points = []RoutePoint{}
	}
	return points
}

// SetPoints serializes the point list preserving order.
func (r *Route) SetPoints(points []RoutePoint) error {
	if points == nil {
		points = []RoutePoint{}
	}
	raw, err := json.Marshal(points)
	if err != nil {
		return err
	}
	s := string(raw)
	r.PointsJSON = &s
	return nil
}

func (r *Route) IsOwnedBy(userID int) bool {
	return r.CreatorUserID != nil && *r.CreatorUserID == userID
}

type RouteLike struct {
	ID        int       `json:"id" db:"id"`
	RouteID   int       `json:"route_id" db:"route_id"`
	UserID    int       `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type FavoriteRoute struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	RouteID   int       `json:"route_id" db:"route_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LikesAward tracks how many 10-like blocks have already been converted
// into rating for a user; awarded_count only ever grows.
type LikesAward struct {
	UserID       int `json:"user_id" db:"user_id"`
	AwardedCount int `json:"awarded_count" db:"awarded_count"`
}

// LikesPerAward is the block size converting accumulated likes to rating.
const LikesPerAward = 10
