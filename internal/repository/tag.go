package repository

import (
	"context"

	"github.com/linskybing/support-tracker/internal/domain/tag"
	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"gorm.io/gorm"
)

type TagRepo interface {
	ListTags(ctx context.Context) ([]tag.Tag, error)
	GetTagByID(ctx context.Context, id uint) (tag.Tag, error)
	CountTagsByIDs(ctx context.Context, ids []uint) (int64, error)
	CreateTag(ctx context.Context, t *tag.Tag) error
	SaveTag(ctx context.Context, t *tag.Tag) error
	// DeleteTag removes the tag and every ticket association pointing at it.
	DeleteTag(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) TagRepo
}

type DBTagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *DBTagRepo {
	return &DBTagRepo{db: db}
}

func (r *DBTagRepo) ListTags(ctx context.Context) ([]tag.Tag, error) {
	tags := []tag.Tag{}
	err := r.db.WithContext(ctx).Order("name ASC").Order("id ASC").Find(&tags).Error
	return tags, err
}

func (r *DBTagRepo) GetTagByID(ctx context.Context, id uint) (tag.Tag, error) {
	var t tag.Tag
	err := r.db.WithContext(ctx).First(&t, id).Error
	return t, err
}

func (r *DBTagRepo) CountTagsByIDs(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var n int64
	err := r.db.WithContext(ctx).Model(&tag.Tag{}).Where("id IN ?", ids).Count(&n).Error
	return n, err
}

func (r *DBTagRepo) CreateTag(ctx context.Context, t *tag.Tag) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *DBTagRepo) SaveTag(ctx context.Context, t *tag.Tag) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *DBTagRepo) DeleteTag(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&ticket.TicketTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&tag.Tag{}, id).Error
	})
}

func (r *DBTagRepo) WithTx(tx *gorm.DB) TagRepo {
	if tx == nil {
		return r
	}
	return &DBTagRepo{db: tx}
}
