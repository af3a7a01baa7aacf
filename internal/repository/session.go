package repository

import (
	"context"
	"errors"
	"time"

	"github.com/linskybing/support-tracker/internal/domain/session"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepo stores server-side session records. Implementations return
// ErrSessionNotFound for unknown ids.
type SessionRepo interface {
	CreateSession(ctx context.Context, s *session.Session) error
	GetSession(ctx context.Context, id string) (session.Session, error)
	DeleteSession(ctx context.Context, id string) error
}

// SessionPurger is implemented by stores that keep expired records until
// they are removed explicitly.
type SessionPurger interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type DBSessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *DBSessionRepo {
	return &DBSessionRepo{db: db}
}

func (r *DBSessionRepo) CreateSession(ctx context.Context, s *session.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *DBSessionRepo) GetSession(ctx context.Context, id string) (session.Session, error) {
	var s session.Session
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s, ErrSessionNotFound
	}
	return s, err
}

// DeleteSession is idempotent.
func (r *DBSessionRepo) DeleteSession(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&session.Session{}).Error
}

func (r *DBSessionRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&session.Session{})
	return res.RowsAffected, res.Error
}
