package daily

import (
	"context"
	"testing"
	"time"

	"github.com/gdugdh24/godate-backend/internal/domain"
	"github.com/gdugdh24/godate-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type completionKey struct {
	userID int
	date   string
	taskID int
}

type fakeDailyRepo struct {
	tasks       []*domain.DailyTask
	globals     map[string]*domain.GlobalDaily
	completions map[completionKey]bool
	seq         int
}

func newFakeDailyRepo() *fakeDailyRepo {
	return &fakeDailyRepo{
		globals:     make(map[string]*domain.GlobalDaily),
		completions: make(map[completionKey]bool),
	}
}

func day(t time.Time) string {
	return t.Format("2006-01-02")
}

func (f *fakeDailyRepo) CountTasks(_ context.Context) (int, error) {
	return len(f.tasks), nil
}

func (f *fakeDailyRepo) SeedTasks(_ context.Context, tasks []domain.DailyTask) error {
	for i := range tasks {
		task := tasks[i]
		task.ID = i + 1
		f.tasks = append(f.tasks, &task)
	}
	return nil
}

func (f *fakeDailyRepo) ListTasks(_ context.Context) ([]*domain.DailyTask, error) {
	return f.tasks, nil
}

func (f *fakeDailyRepo) GetTask(_ context.Context, id int) (*domain.DailyTask, error) {
	for _, task := range f.tasks {
		if task.ID == id {
			return task, nil
		}
	}
	return nil, domain.ErrDailyTaskNotFound
}

func (f *fakeDailyRepo) GetGlobalByDate(_ context.Context, date time.Time) (*domain.GlobalDaily, error) {
	if gd, ok := f.globals[day(date)]; ok {
		return gd, nil
	}
	return nil, domain.ErrDailyNotFound
}

func (f *fakeDailyRepo) CreateGlobal(_ context.Context, date time.Time, taskID int) error {
	key := day(date)
	if _, ok := f.globals[key]; ok {
		return nil
	}
	f.seq++
	parsed, _ := time.Parse("2006-01-02", key)
	f.globals[key] = &domain.GlobalDaily{ID: f.seq, Date: parsed, TaskID: taskID}
	return nil
}

func (f *fakeDailyRepo) HasCompletion(_ context.Context, userID int, date time.Time, taskID int) (bool, error) {
	return f.completions[completionKey{userID, day(date), taskID}], nil
}

func (f *fakeDailyRepo) CreateCompletion(_ context.Context, userID int, date time.Time, taskID int) error {
	key := completionKey{userID, day(date), taskID}
	if f.completions[key] {
		return domain.ErrDailyCompleted
	}
	f.completions[key] = true
	return nil
}

// ratingRecorder stubs just the rating credit; the embedded interface
// panics on anything else, which would mean the use case grew a new
// dependency this test must cover.
type ratingRecorder struct {
	repository.UserRepository
	ratings map[int]int
}

func (r *ratingRecorder) AddRating(_ context.Context, userID, delta int) (int, error) {
	r.ratings[userID] += delta
	return r.ratings[userID], nil
}

func setup(t *testing.T) (*UseCase, *fakeDailyRepo, *ratingRecorder) {
	t.Helper()
	dailyRepo := newFakeDailyRepo()
	users := &ratingRecorder{ratings: make(map[int]int)}
	uc := NewUseCase(dailyRepo, users)
	require.NoError(t, uc.SeedDefaultTasks(context.Background()))
	return uc, dailyRepo, users
}

func TestSeedDefaultTasksOnce(t *testing.T) {
	uc, repo, _ := setup(t)

	require.Len(t, repo.tasks, len(domain.DefaultDailyTasks))

	// A second seeding pass leaves the catalog untouched.
	require.NoError(t, uc.SeedDefaultTasks(context.Background()))
	assert.Len(t, repo.tasks, len(domain.DefaultDailyTasks))
}

func TestTodayPicksAndPersists(t *testing.T) {
	uc, repo, _ := setup(t)
	uc.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	uc.pick = func(int) int { return 1 }

	resp, err := uc.Today(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", resp.Date)
	assert.Equal(t, "date_out", resp.Task.Code)
	assert.Equal(t, 40, resp.Task.RewardPoints)
	assert.False(t, resp.Completed)

	// The choice is persisted: a different pick no longer matters.
	uc.pick = func(int) int { return 0 }
	again, err := uc.Today(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "date_out", again.Task.Code)
	assert.Len(t, repo.globals, 1)
}

func TestTodayRotatesAcrossDays(t *testing.T) {
	uc, repo, _ := setup(t)
	uc.pick = func(int) int { return 0 }

	uc.now = func() time.Time { return time.Date(2026, 3, 14, 23, 50, 0, 0, time.UTC) }
	_, err := uc.Today(context.Background(), 1)
	require.NoError(t, err)

	uc.now = func() time.Time { return time.Date(2026, 3, 15, 0, 10, 0, 0, time.UTC) }
	_, err = uc.Today(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, repo.globals, 2)
}

func TestCompleteAwardsOnce(t *testing.T) {
	uc, _, users := setup(t)
	uc.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	uc.pick = func(int) int { return 0 }

	resp, err := uc.Complete(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 20, resp.AwardedPoints)
	assert.Equal(t, 20, resp.NewRating)
	assert.Equal(t, 20, users.ratings[7])

	_, err = uc.Complete(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrDailyCompleted)
	assert.Equal(t, 20, users.ratings[7], "no double credit")

	today, err := uc.Today(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, today.Completed)
}

func TestCompleteIsPerUser(t *testing.T) {
	uc, _, users := setup(t)
	uc.now = func() time.Time { return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC) }
	uc.pick = func(int) int { return 2 }

	_, err := uc.Complete(context.Background(), 1)
	require.NoError(t, err)
	_, err = uc.Complete(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 30, users.ratings[1])
	assert.Equal(t, 30, users.ratings[2])
}
