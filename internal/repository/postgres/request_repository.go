package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gdugdh24/godate-backend/internal/domain"
	"github.com/gdugdh24/godate-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type requestRepository struct {
	db *sqlx.DB
}

func NewRequestRepository(db *sqlx.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.FriendRequest) error {
	query := `
		INSERT INTO friend_requests (from_user_id, to_user_id, type, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	if req.Status == "" {
		req.Status = domain.RequestStatusPending
	}
	err := r.db.QueryRowContext(ctx, query, req.FromUserID, req.ToUserID, req.Type, req.Status).
		Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRequestExists
		}
		return err
	}
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id int) (*domain.FriendRequest, error) {
	var req domain.FriendRequest
	query := `SELECT * FROM friend_requests WHERE id = $1`
	err := r.db.GetContext(ctx, &req, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) ListPendingIncoming(ctx context.Context, userID int) ([]*domain.FriendRequest, error) {
	var requests []*domain.FriendRequest
	query := `
		SELECT * FROM friend_requests
		WHERE to_user_id = $1 AND status = $2
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &requests, query, userID, domain.RequestStatusPending)
	return requests, err
}

func (r *requestRepository) ListPendingOutgoing(ctx context.Context, userID int) ([]*domain.FriendRequest, error) {
	var requests []*domain.FriendRequest
	query := `
		SELECT * FROM friend_requests
		WHERE from_user_id = $1 AND status = $2
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &requests, query, userID, domain.RequestStatusPending)
	return requests, err
}

func (r *requestRepository) SetStatus(ctx context.Context, id int, status domain.RequestStatus) error {
	query := `UPDATE friend_requests SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *requestRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM friend_requests WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *requestRepository) FindAcceptedFriendship(ctx context.Context, userID, friendID int) (*domain.FriendRequest, error) {
	var req domain.FriendRequest
	query := `
		SELECT * FROM friend_requests
		WHERE status = $1 AND type = $2
		  AND ((from_user_id = $3 AND to_user_id = $4)
		    OR (from_user_id = $4 AND to_user_id = $3))
	`
	err := r.db.GetContext(ctx, &req, query,
		domain.RequestStatusAccepted, domain.RequestTypeFriend, userID, friendID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFriendshipNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) FriendIDs(ctx context.Context, userID int) ([]int, error) {
	var ids []int
	query := `
		SELECT CASE WHEN from_user_id = $1 THEN to_user_id ELSE from_user_id END
		FROM friend_requests
		WHERE status = $2 AND type = $3
		  AND (from_user_id = $1 OR to_user_id = $1)
	`
	err := r.db.SelectContext(ctx, &ids, query,
		userID, domain.RequestStatusAccepted, domain.RequestTypeFriend)
	return ids, err
}
