package repository

import (
	"context"

	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"gorm.io/gorm"
)

type ReplyRepo interface {
	CreateReply(ctx context.Context, reply *ticket.Reply) error
	// GetReplyByID loads the reply with the email of the admin who wrote it.
	GetReplyByID(ctx context.Context, id uint) (ticket.Reply, error)
	WithTx(tx *gorm.DB) ReplyRepo
}

type DBReplyRepo struct {
	db *gorm.DB
}

func NewReplyRepo(db *gorm.DB) *DBReplyRepo {
	return &DBReplyRepo{db: db}
}

func (r *DBReplyRepo) CreateReply(ctx context.Context, reply *ticket.Reply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *DBReplyRepo) GetReplyByID(ctx context.Context, id uint) (ticket.Reply, error) {
	var reply ticket.Reply
	err := repliesWithAdmin(r.db.WithContext(ctx).Model(&ticket.Reply{})).
		Where("replies.id = ?", id).
		Take(&reply).Error
	return reply, err
}

func (r *DBReplyRepo) WithTx(tx *gorm.DB) ReplyRepo {
	if tx == nil {
		return r
	}
	return &DBReplyRepo{db: tx}
}
