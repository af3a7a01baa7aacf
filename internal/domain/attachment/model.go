package attachment

import "time"

type Attachment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TicketID    uint      `gorm:"not null;index" json:"ticket_id"`
	UploaderID  uint      `gorm:"not null" json:"uploader_id"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	ContentType string    `gorm:"size:127" json:"content_type"`
	Size        int64     `json:"size"`
	ObjectKey   string    `gorm:"size:512;not null;uniqueIndex" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
