//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra/document"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserBuilder struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Picture      string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           primitive.NewObjectID().Hex(),
		Name:         "Test Guest",
		Email:        "guest@example.com",
		PasswordHash: "hashed_password",
		Role:         string(user.RoleUser),
		CreatedAt:    time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(name, email, u.PasswordHash, role, u.Picture, u.CreatedAt), nil
}

// BuildStored returns the user as loaded from the repository, id included.
func (u *UserBuilder) BuildStored() *user.User {
	name, _ := user.NewName(u.Name)
	email, _ := user.NewEmail(u.Email)
	return user.Reconstruct(u.ID, name, email, u.PasswordHash, user.Role(u.Role), u.Picture, u.CreatedAt, u.CreatedAt)
}

func (u *UserBuilder) BuildDocument() document.User {
	oid, _ := document.ObjectID(u.ID)
	return document.User{
		ID:        oid,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Role:      u.Role,
		Picture:   u.Picture,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.CreatedAt,
	}
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Picture:   u.Picture,
		CreatedAt: u.CreatedAt,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id string) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithPicture(picture string) *UserBuilder {
	u.Picture = picture
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = string(user.RoleAdmin)
	return u
}

// AsGoogleAccount drops the password, as for accounts created by Google sign-in.
func (u *UserBuilder) AsGoogleAccount() *UserBuilder {
	u.PasswordHash = ""
	return u
}
