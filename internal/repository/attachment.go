package repository

import (
	"context"

	"github.com/linskybing/support-tracker/internal/domain/attachment"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	CreateAttachment(ctx context.Context, a *attachment.Attachment) error
	GetAttachment(ctx context.Context, ticketID, id uint) (attachment.Attachment, error)
	ListAttachments(ctx context.Context, ticketID uint) ([]attachment.Attachment, error)
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{db: db}
}

func (r *DBAttachmentRepo) CreateAttachment(ctx context.Context, a *attachment.Attachment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

// GetAttachment only matches when the attachment belongs to ticketID.
func (r *DBAttachmentRepo) GetAttachment(ctx context.Context, ticketID, id uint) (attachment.Attachment, error) {
	var a attachment.Attachment
	err := r.db.WithContext(ctx).
		Where("id = ? AND ticket_id = ?", id, ticketID).
		First(&a).Error
	return a, err
}

func (r *DBAttachmentRepo) ListAttachments(ctx context.Context, ticketID uint) ([]attachment.Attachment, error) {
	list := []attachment.Attachment{}
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{db: tx}
}
