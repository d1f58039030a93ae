package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/godate-backend/internal/domain"
)

type DailyRepository interface {
	CountTasks(ctx context.Context) (int, error)
	SeedTasks(ctx context.Context, tasks []domain.DailyTask) error
	ListTasks(ctx context.Context) ([]*domain.DailyTask, error)
	GetTask(ctx context.Context, id int) (*domain.DailyTask, error)

	GetGlobalByDate(ctx context.Context, date time.Time) (*domain.GlobalDaily, error)

	// CreateGlobal persists the day's chosen task with insert-ignore
	// semantics: a concurrent writer for the same date wins silently and
	// the caller is expected to re-read.
	CreateGlobal(ctx context.Context, date time.Time, taskID int) error

	HasCompletion(ctx context.Context, userID int, date time.Time, taskID int) (bool, error)

	// CreateCompletion fails with domain.ErrDailyCompleted when the
	// (user, date, task) row already exists.
	CreateCompletion(ctx context.Context, userID int, date time.Time, taskID int) error
}
