package session

import (
	"time"

	"github.com/linskybing/support-tracker/internal/domain/user"
)

// Session binds an opaque id to a user and the role they held at login.
type Session struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Role      user.Role `gorm:"size:20;not null" json:"role"`
	ExpiresAt time.Time `gorm:"index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
