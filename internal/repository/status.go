package repository

import (
	"context"

	"github.com/linskybing/support-tracker/internal/domain/status"
	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"gorm.io/gorm"
)

type StatusRepo interface {
	ListStatuses(ctx context.Context) ([]status.Status, error)
	GetStatusByID(ctx context.Context, id uint) (status.Status, error)
	GetStatusByName(ctx context.Context, name string) (status.Status, error)
	// GetDefaultStatus returns the status with the lowest id.
	GetDefaultStatus(ctx context.Context) (status.Status, error)
	CreateStatus(ctx context.Context, s *status.Status) error
	SaveStatus(ctx context.Context, s *status.Status) error
	DeleteStatus(ctx context.Context, id uint) error
	CountTicketsWithStatus(ctx context.Context, id uint) (int64, error)
	WithTx(tx *gorm.DB) StatusRepo
}

type DBStatusRepo struct {
	db *gorm.DB
}

func NewStatusRepo(db *gorm.DB) *DBStatusRepo {
	return &DBStatusRepo{db: db}
}

func (r *DBStatusRepo) ListStatuses(ctx context.Context) ([]status.Status, error) {
	statuses := []status.Status{}
	err := r.db.WithContext(ctx).Order("id ASC").Find(&statuses).Error
	return statuses, err
}

func (r *DBStatusRepo) GetStatusByID(ctx context.Context, id uint) (status.Status, error) {
	var s status.Status
	err := r.db.WithContext(ctx).First(&s, id).Error
	return s, err
}

func (r *DBStatusRepo) GetStatusByName(ctx context.Context, name string) (status.Status, error) {
	var s status.Status
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&s).Error
	return s, err
}

func (r *DBStatusRepo) GetDefaultStatus(ctx context.Context) (status.Status, error) {
	var s status.Status
	err := r.db.WithContext(ctx).Order("id ASC").First(&s).Error
	return s, err
}

func (r *DBStatusRepo) CreateStatus(ctx context.Context, s *status.Status) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *DBStatusRepo) SaveStatus(ctx context.Context, s *status.Status) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *DBStatusRepo) DeleteStatus(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&status.Status{}, id).Error
}

func (r *DBStatusRepo) CountTicketsWithStatus(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&ticket.Ticket{}).Where("status_id = ?", id).Count(&n).Error
	return n, err
}

func (r *DBStatusRepo) WithTx(tx *gorm.DB) StatusRepo {
	if tx == nil {
		return r
	}
	return &DBStatusRepo{db: tx}
}
