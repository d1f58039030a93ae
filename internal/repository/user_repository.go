package repository

import (
	"context"

	"github.com/gdugdh24/godate-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByNickname(ctx context.Context, nickname string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int) ([]*domain.User, error)
	UpdateAvatar(ctx context.Context, userID int, avatarURL string) error

	// AddRating atomically credits delta to the user's rating and returns
	// the new value.
	AddRating(ctx context.Context, userID int, delta int) (int, error)

	// LinkSoulmates sets the mutual soulmate references in one transaction.
	// Fails with domain.ErrSoulmateTaken if either side already has one.
	LinkSoulmates(ctx context.Context, userID, soulmateID int) error

	// UnlinkSoulmates clears the mutual references in one transaction.
	UnlinkSoulmates(ctx context.Context, userID, soulmateID int) error

	// ListByRating returns all users ordered by rating, highest first.
	ListByRating(ctx context.Context) ([]*domain.User, error)
}
