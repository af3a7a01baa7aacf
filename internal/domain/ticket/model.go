package ticket

import (
	"time"

	"github.com/linskybing/support-tracker/internal/domain/tag"
)

type Ticket struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	StatusID    uint      `gorm:"not null;index" json:"status_id"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Filled from joins on statuses and users; never written.
	StatusName string `gorm:"->;-:migration" json:"status_name"`
	UserEmail  string `gorm:"->;-:migration" json:"user_email"`

	Tags    []tag.Tag `gorm:"many2many:ticket_tags;" json:"tags"`
	Replies []Reply   `gorm:"foreignKey:TicketID" json:"replies,omitempty"`
}

// TicketTag is the join row between tickets and tags.
type TicketTag struct {
	TicketID uint `gorm:"primaryKey"`
	TagID    uint `gorm:"primaryKey;index"`
}

// Reply is an admin response on a ticket.
type Reply struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TicketID  uint      `gorm:"not null;index" json:"ticket_id"`
	AdminID   uint      `gorm:"not null" json:"admin_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`

	AdminEmail string `gorm:"->;-:migration" json:"admin_email"`
}
