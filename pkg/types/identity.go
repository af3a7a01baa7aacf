package types

import "github.com/linskybing/support-tracker/internal/domain/user"

// Identity is the authenticated caller resolved from a session.
type Identity struct {
	UserID    uint
	Email     string
	Role      user.Role
	SessionID string
}

func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == user.RoleAdmin
}
