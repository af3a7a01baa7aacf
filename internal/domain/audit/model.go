package audit

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActionTicketCreated       = "ticket.created"
	ActionTicketStatusChanged = "ticket.status_changed"
	ActionTicketTagsSynced    = "ticket.tags_synced"
	ActionTicketReplied       = "ticket.replied"
	ActionAttachmentAdded     = "ticket.attachment_added"

	ResourceTicket = "ticket"
)

type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"index" json:"user_id"`
	Action       string         `gorm:"size:64;not null" json:"action"`
	ResourceType string         `gorm:"size:64;not null;index:idx_audit_resource" json:"resource_type"`
	ResourceID   string         `gorm:"size:64;not null;index:idx_audit_resource" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	IPAddress    string         `gorm:"size:64" json:"ip_address,omitempty"`
	UserAgent    string         `gorm:"size:255" json:"user_agent,omitempty"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}
