package response

import (
	"time"

	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
)

type AuthResponse struct {
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Role    string `json:"role"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture,omitempty"`
}

func FromAuthResult(r *commands.AuthResult) *AuthResponse {
	res := copyInto[AuthResponse](r)
	res.Role = r.Role.String()
	return res
}

type UserResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Picture   string    `json:"picture,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return copyInto[UserResponse](v)
}
