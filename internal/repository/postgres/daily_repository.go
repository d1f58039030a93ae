package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gdugdh24/godate-backend/internal/domain"
	"github.com/gdugdh24/godate-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type dailyRepository struct {
	db *sqlx.DB
}

func NewDailyRepository(db *sqlx.DB) repository.DailyRepository {
	return &dailyRepository{db: db}
}

func (r *dailyRepository) CountTasks(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM daily_tasks`
	err := r.db.GetContext(ctx, &count, query)
	return count, err
}

func (r *dailyRepository) SeedTasks(ctx context.Context, tasks []domain.DailyTask) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO daily_tasks (code, title, description, reward_points)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO NOTHING
	`
	for _, task := range tasks {
		if _, err := tx.ExecContext(ctx, query, task.Code, task.Title, task.Description, task.RewardPoints); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *dailyRepository) ListTasks(ctx context.Context) ([]*domain.DailyTask, error) {
	var tasks []*domain.DailyTask
	query := `SELECT * FROM daily_tasks ORDER BY id`
	err := r.db.SelectContext(ctx, &tasks, query)
	return tasks, err
}

func (r *dailyRepository) GetTask(ctx context.Context, id int) (*domain.DailyTask, error) {
	var task domain.DailyTask
	query := `SELECT * FROM daily_tasks WHERE id = $1`
	err := r.db.GetContext(ctx, &task, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDailyTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *dailyRepository) GetGlobalByDate(ctx context.Context, date time.Time) (*domain.GlobalDaily, error) {
	var gd domain.GlobalDaily
	query := `SELECT * FROM global_daily WHERE date = $1`
	err := r.db.GetContext(ctx, &gd, query, dateOnly(date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDailyNotFound
		}
		return nil, err
	}
	return &gd, nil
}

func (r *dailyRepository) CreateGlobal(ctx context.Context, date time.Time, taskID int) error {
	// First writer wins; concurrent callers re-read the persisted choice.
	query := `
		INSERT INTO global_daily (date, task_id)
		VALUES ($1, $2)
		ON CONFLICT (date) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, dateOnly(date), taskID)
	return err
}

func (r *dailyRepository) HasCompletion(ctx context.Context, userID int, date time.Time, taskID int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM daily_completion
			WHERE user_id = $1 AND date = $2 AND task_id = $3
		)
	`
	err := r.db.GetContext(ctx, &exists, query, userID, dateOnly(date), taskID)
	return exists, err
}

func (r *dailyRepository) CreateCompletion(ctx context.Context, userID int, date time.Time, taskID int) error {
	query := `
		INSERT INTO daily_completion (user_id, date, task_id)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, userID, dateOnly(date), taskID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDailyCompleted
		}
		return err
	}
	return nil
}

// dateOnly normalizes a timestamp to its calendar date for DATE columns.
func dateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
