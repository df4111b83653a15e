package document

import (
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/usecase/queries"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password,omitempty"`
	Role      string             `bson:"role"`
	Picture   string             `bson:"picture,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func FromUser(u *user.User) User {
	doc := User{
		Name:      u.Name().Value(),
		Email:     u.Email().Value(),
		Password:  u.PasswordHash(),
		Role:      u.Role().String(),
		Picture:   u.Picture(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
	if oid, ok := ObjectID(u.ID()); ok {
		doc.ID = oid
	}
	return doc
}

func (d User) ToDomain() (*user.User, error) {
	name, err := user.NewName(d.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(d.Email)
	if err != nil {
		return nil, err
	}
	role := user.Role(d.Role)
	if !role.IsValid() {
		role = user.RoleUser
	}
	return user.Reconstruct(d.ID.Hex(), name, email, d.Password, role, d.Picture, d.CreatedAt, d.UpdatedAt), nil
}

func (d User) ToView() *queries.UserView {
	return &queries.UserView{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Role:      d.Role,
		Picture:   d.Picture,
		CreatedAt: d.CreatedAt,
	}
}
