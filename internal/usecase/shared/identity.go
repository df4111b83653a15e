package shared

import (
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/errs"
)

var (
	ErrAdminOnly        = errs.Forbidden("Admin access required")
	ErrNotAuthenticated = errs.Unauthorized("Not authenticated")
)

// Identity is the authenticated caller. Handlers pass it to every usecase explicitly.
type Identity struct {
	UserID string
	Role   user.Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == user.RoleAdmin
}

func (i Identity) IsZero() bool {
	return i.UserID == ""
}

func RequireUser(i Identity) error {
	if i.IsZero() {
		return ErrNotAuthenticated
	}
	return nil
}

func RequireAdmin(i Identity) error {
	if err := RequireUser(i); err != nil {
		return err
	}
	if !i.IsAdmin() {
		return ErrAdminOnly
	}
	return nil
}
