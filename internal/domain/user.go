package domain

import "time"

type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Nickname     string    `json:"nickname" db:"nickname"`
	PasswordHash string    `json:"-" db:"password_hash"`
	AvatarURL    *string   `json:"avatar_url" db:"avatar_url"`
	Rating       int       `json:"rating" db:"rating"`
	SoulmateID   *int      `json:"soulmate_id" db:"soulmate_id"`
	IsAdmin      bool      `json:"-" db:"is_admin"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PublicUser is the representation safe to show to other users.
type PublicUser struct {
	ID        int     `json:"id"`
	Email     string  `json:"email"`
	Nickname  string  `json:"nickname"`
	AvatarURL *string `json:"avatar_url"`
	Rating    int     `json:"rating"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		AvatarURL: u.AvatarURL,
		Rating:    u.Rating,
	}
}

func (u *User) HasSoulmate() bool {
	return u.SoulmateID != nil
}
