package repository

import (
	"context"

	"github.com/gdugdh24/godate-backend/internal/domain"
)

type RequestRepository interface {
	// Create inserts a pending request. Fails with domain.ErrRequestExists
	// when an identical (from, to, type) request already exists.
	Create(ctx context.Context, req *domain.FriendRequest) error
	GetByID(ctx context.Context, id int) (*domain.FriendRequest, error)
	ListPendingIncoming(ctx context.Context, userID int) ([]*domain.FriendRequest, error)
	ListPendingOutgoing(ctx context.Context, userID int) ([]*domain.FriendRequest, error)
	SetStatus(ctx context.Context, id int, status domain.RequestStatus) error
	Delete(ctx context.Context, id int) error

	// FindAcceptedFriendship locates the accepted friend-kind request
	// between two users regardless of direction.
	FindAcceptedFriendship(ctx context.Context, userID, friendID int) (*domain.FriendRequest, error)

	// FriendIDs derives the friends list: counterpart ids across all
	// accepted friend-kind requests involving the user.
	FriendIDs(ctx context.Context, userID int) ([]int, error)
}
