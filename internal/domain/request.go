package domain

import "time"

type RequestType string

const (
	RequestTypeFriend   RequestType = "friend"
	RequestTypeSoulmate RequestType = "soulmate"
)

func (t RequestType) Valid() bool {
	return t == RequestTypeFriend || t == RequestTypeSoulmate
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
)

// FriendRequest is a friend or soulmate pairing request between two users.
// A request is terminal once accepted or declined.
type FriendRequest struct {
	ID         int           `json:"id" db:"id"`
	FromUserID int           `json:"from_user_id" db:"from_user_id"`
	ToUserID   int           `json:"to_user_id" db:"to_user_id"`
	Type       RequestType   `json:"type" db:"type"`
	Status     RequestStatus `json:"status" db:"status"`
	CreatedAt  time.Time     `json:"created_at" db:"created_at"`
}

func (r *FriendRequest) HasUser(userID int) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}

// Counterpart returns the other participant of the request.
func (r *FriendRequest) Counterpart(userID int) (int, bool) {
	if r.FromUserID == userID {
		return r.ToUserID, true
	}
	if r.ToUserID == userID {
		return r.FromUserID, true
	}
	return 0, false
}
