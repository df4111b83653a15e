package user

import (
	"time"
)

// User is created on register or on first Google sign-in. Accounts are never deleted.
type User struct {
	id           string
	name         Name
	email        Email
	passwordHash string
	role         Role
	picture      string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser builds an unsaved user; the repository assigns the id.
func NewUser(name Name, email Email, passwordHash string, role Role, picture string, now time.Time) *User {
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		picture:      picture,
		createdAt:    now,
		updatedAt:    now,
	}
}

func Reconstruct(id string, name Name, email Email, passwordHash string, role Role, picture string, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		picture:      picture,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() string           { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Picture() string      { return u.picture }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) HasPassword() bool { return u.passwordHash != "" }

// BackfillPicture sets the picture only when none is stored yet.
func (u *User) BackfillPicture(picture string, now time.Time) bool {
	if u.picture != "" || picture == "" {
		return false
	}
	u.picture = picture
	u.updatedAt = now
	return true
}
