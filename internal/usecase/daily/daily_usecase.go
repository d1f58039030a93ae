package daily

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdugdh24/godate-backend/internal/domain"
	"github.com/gdugdh24/godate-backend/internal/repository"
)

// UseCase rotates one globally shared task per calendar day and tracks
// per-user completion.
type UseCase struct {
	dailyRepo repository.DailyRepository
	userRepo  repository.UserRepository

	now  func() time.Time
	pick func(n int) int
}

func NewUseCase(dailyRepo repository.DailyRepository, userRepo repository.UserRepository) *UseCase {
	return &UseCase{
		dailyRepo: dailyRepo,
		userRepo:  userRepo,
		now:       time.Now,
		pick:      rand.Intn,
	}
}

// TaskView is the public shape of a daily task.
type TaskView struct {
	Code         string `json:"code"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	RewardPoints int    `json:"reward_points"`
}

type TodayResponse struct {
	Date      string   `json:"date"`
	Task      TaskView `json:"task"`
	Completed bool     `json:"completed"`
}

type CompleteResponse struct {
	AwardedPoints int `json:"awarded_points"`
	NewRating     int `json:"new_rating"`
}

// SeedDefaultTasks populates the task catalog on first start.
func (uc *UseCase) SeedDefaultTasks(ctx context.Context) error {
	count, err := uc.dailyRepo.CountTasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to count daily tasks: %w", err)
	}
	if count > 0 {
		return nil
	}
	return uc.dailyRepo.SeedTasks(ctx, domain.DefaultDailyTasks)
}

// ensureToday returns today's chosen task, picking and persisting one on
// the first access of the day. Concurrent first accesses converge on the
// first persisted choice.
func (uc *UseCase) ensureToday(ctx context.Context) (*domain.GlobalDaily, *domain.DailyTask, error) {
	today := uc.now()

	gd, err := uc.dailyRepo.GetGlobalByDate(ctx, today)
	if errors.Is(err, domain.ErrDailyNotFound) {
		tasks, listErr := uc.dailyRepo.ListTasks(ctx)
		if listErr != nil {
			return nil, nil, listErr
		}
		if len(tasks) == 0 {
			return nil, nil, domain.ErrDailyTaskNotFound
		}
		chosen := tasks[uc.pick(len(tasks))]
		if err := uc.dailyRepo.CreateGlobal(ctx, today, chosen.ID); err != nil {
			return nil, nil, err
		}
		// Re-read: a concurrent caller may have won the insert.
		gd, err = uc.dailyRepo.GetGlobalByDate(ctx, today)
	}
	if err != nil {
		return nil, nil, err
	}

	task, err := uc.dailyRepo.GetTask(ctx, gd.TaskID)
	if err != nil {
		return nil, nil, err
	}
	return gd, task, nil
}

// Today returns the current task and whether the user completed it.
func (uc *UseCase) Today(ctx context.Context, userID int) (*TodayResponse, error) {
	gd, task, err := uc.ensureToday(ctx)
	if err != nil {
		return nil, err
	}

	completed, err := uc.dailyRepo.HasCompletion(ctx, userID, gd.Date, gd.TaskID)
	if err != nil {
		return nil, err
	}

	return &TodayResponse{
		Date: gd.Date.Format("2006-01-02"),
		Task: TaskView{
			Code:         task.Code,
			Title:        task.Title,
			Description:  task.Description,
			RewardPoints: task.RewardPoints,
		},
		Completed: completed,
	}, nil
}

// Complete records today's completion and credits the reward once.
func (uc *UseCase) Complete(ctx context.Context, userID int) (*CompleteResponse, error) {
	gd, task, err := uc.ensureToday(ctx)
	if err != nil {
		return nil, err
	}

	completed, err := uc.dailyRepo.HasCompletion(ctx, userID, gd.Date, gd.TaskID)
	if err != nil {
		return nil, err
	}
	if completed {
		return nil, domain.ErrDailyCompleted
	}

	// The unique constraint catches a racing duplicate the check missed.
	if err := uc.dailyRepo.CreateCompletion(ctx, userID, gd.Date, gd.TaskID); err != nil {
		return nil, err
	}

	newRating, err := uc.userRepo.AddRating(ctx, userID, task.RewardPoints)
	if err != nil {
		return nil, err
	}

	return &CompleteResponse{
		AwardedPoints: task.RewardPoints,
		NewRating:     newRating,
	}, nil
}
