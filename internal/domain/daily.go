package domain

import "time"

// DailyTask is an entry of the immutable task catalog.
type DailyTask struct {
	ID           int    `json:"id" db:"id"`
	Code         string `json:"code" db:"code"`
	Title        string `json:"title" db:"title"`
	Description  string `json:"description" db:"description"`
	RewardPoints int    `json:"reward_points" db:"reward_points"`
}

// GlobalDaily pins one catalog task to a calendar date for everyone.
type GlobalDaily struct {
	ID     int       `json:"id" db:"id"`
	Date   time.Time `json:"date" db:"date"`
	TaskID int       `json:"task_id" db:"task_id"`
}

type DailyCompletion struct {
	ID     int       `json:"id" db:"id"`
	UserID int       `json:"user_id" db:"user_id"`
	Date   time.Time `json:"date" db:"date"`
	TaskID int       `json:"task_id" db:"task_id"`
}

// DefaultDailyTasks is the catalog seeded on first start.
var DefaultDailyTasks = []DailyTask{
	{
		Code:         "add_friend",
		Title:        "Добавить нового друга",
		Description:  "Добавьте нового друга сегодня",
		RewardPoints: 20,
	},
	{
		Code:         "date_out",
		Title:        "Сходить на свидание",
		Description:  "Кино/ресторан/парк — засчитывается по кнопке",
		RewardPoints: 40,
	},
	{
		Code:         "create_route",
		Title:        "Создать свой маршрут",
		Description:  "Создайте маршрут и поделитесь с другими",
		RewardPoints: 30,
	},
}
