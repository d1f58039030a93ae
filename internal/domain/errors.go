package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")

	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("email or nickname already taken")
	ErrSelfRequest        = errors.New("cannot send request to yourself")
	ErrRequestNotFound    = errors.New("request not found")
	ErrRequestExists      = errors.New("request already exists")
	ErrSoulmateTaken      = errors.New("soulmate already set")
	ErrNoSoulmate         = errors.New("no soulmate set")
	ErrFriendshipNotFound = errors.New("friendship not found")

	ErrDailyCompleted    = errors.New("daily already completed today")
	ErrDailyNotFound     = errors.New("daily not found")
	ErrDailyTaskNotFound = errors.New("daily task not found")

	ErrRouteNotFound = errors.New("route not found")
	ErrOwnRouteLike  = errors.New("cannot like own route")
	ErrAlreadyLiked  = errors.New("route already liked")

	ErrAIUnavailable = errors.New("ai service unavailable")
)
