package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gdugdh24/godate-backend/internal/domain"
	"github.com/gdugdh24/godate-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, nickname, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, rating, is_admin, created_at
	`
	err := r.db.QueryRowContext(ctx, query, user.Email, user.Nickname, user.PasswordHash).
		Scan(&user.ID, &user.Rating, &user.IsAdmin, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE email = $1`
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE nickname = $1`
	err := r.db.GetContext(ctx, &user, query, nickname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []int) ([]*domain.User, error) {
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}
	query, args, err := sqlx.In(`SELECT * FROM users WHERE id IN (?)`, ids)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var users []*domain.User
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateAvatar(ctx context.Context, userID int, avatarURL string) error {
	query := `UPDATE users SET avatar_url = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, avatarURL, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) AddRating(ctx context.Context, userID int, delta int) (int, error) {
	var rating int
	query := `UPDATE users SET rating = rating + $1 WHERE id = $2 RETURNING rating`
	err := r.db.QueryRowContext(ctx, query, delta, userID).Scan(&rating)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrUserNotFound
		}
		return 0, err
	}
	return rating, nil
}

func (r *userRepository) LinkSoulmates(ctx context.Context, userID, soulmateID int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Re-validate under lock: acceptance is authoritative, the check at
	// request-send time may be stale by now.
	var taken int
	query := `
		SELECT COUNT(*) FROM (
			SELECT soulmate_id FROM users WHERE id IN ($1, $2) FOR UPDATE
		) u WHERE u.soulmate_id IS NOT NULL
	`
	if err := tx.QueryRowContext(ctx, query, userID, soulmateID).Scan(&taken); err != nil {
		return err
	}
	if taken > 0 {
		return domain.ErrSoulmateTaken
	}

	if _, err := tx.ExecContext(ctx, `UPDATE users SET soulmate_id = $1 WHERE id = $2`, soulmateID, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE users SET soulmate_id = $1 WHERE id = $2`, userID, soulmateID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *userRepository) UnlinkSoulmates(ctx context.Context, userID, soulmateID int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `UPDATE users SET soulmate_id = NULL WHERE id IN ($1, $2)`
	if _, err := tx.ExecContext(ctx, query, userID, soulmateID); err != nil {
		return fmt.Errorf("failed to unlink soulmates: %w", err)
	}

	return tx.Commit()
}

func (r *userRepository) ListByRating(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	query := `SELECT * FROM users ORDER BY rating DESC, id ASC`
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}
