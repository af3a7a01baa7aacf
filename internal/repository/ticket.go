package repository

import (
	"context"
	"time"

	"github.com/linskybing/support-tracker/internal/domain/tag"
	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"gorm.io/gorm"
)

// SortColumns is the allow-list of ticket columns a listing may be ordered by.
var SortColumns = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"status_id":  true,
}

const ticketColumns = "tickets.*, statuses.name AS status_name, users.email AS user_email"

type TicketRepo interface {
	CreateTicket(ctx context.Context, t *ticket.Ticket) error
	// GetTicketByID loads the ticket row with status name and owner email.
	GetTicketByID(ctx context.Context, id uint) (ticket.Ticket, error)
	// GetTicketWithRelations also loads tags (by name) and replies (oldest first).
	GetTicketWithRelations(ctx context.Context, id uint) (ticket.Ticket, error)
	ListTickets(ctx context.Context, q ticket.Query) ([]ticket.Ticket, int64, error)
	UpdateTicketStatus(ctx context.Context, id, statusID uint) error
	// SyncTags replaces the full tag set of a ticket. Run it inside a
	// transaction so readers never observe the intermediate empty set.
	SyncTags(ctx context.Context, id uint, tagIDs []uint) error
	ListTagIDs(ctx context.Context, id uint) ([]uint, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) CreateTicket(ctx context.Context, t *ticket.Ticket) error {
	return r.db.WithContext(ctx).Omit("Tags", "Replies").Create(t).Error
}

func (r *DBTicketRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&ticket.Ticket{}).
		Joins("JOIN statuses ON statuses.id = tickets.status_id").
		Joins("JOIN users ON users.id = tickets.user_id")
}

func tagsByName(db *gorm.DB) *gorm.DB {
	return db.Order("tags.name ASC").Order("tags.id ASC")
}

func repliesWithAdmin(db *gorm.DB) *gorm.DB {
	return db.
		Select("replies.*, users.email AS admin_email").
		Joins("JOIN users ON users.id = replies.admin_id").
		Order("replies.created_at ASC").
		Order("replies.id ASC")
}

func (r *DBTicketRepo) GetTicketByID(ctx context.Context, id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.joined(ctx).Select(ticketColumns).Where("tickets.id = ?", id).Take(&t).Error
	return t, err
}

func (r *DBTicketRepo) GetTicketWithRelations(ctx context.Context, id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.joined(ctx).
		Select(ticketColumns).
		Where("tickets.id = ?", id).
		Preload("Tags", tagsByName).
		Preload("Replies", repliesWithAdmin).
		Take(&t).Error
	if err != nil {
		return t, err
	}
	if t.Tags == nil {
		t.Tags = []tag.Tag{}
	}
	if t.Replies == nil {
		t.Replies = []ticket.Reply{}
	}
	return t, nil
}

func applyTicketFilters(db *gorm.DB, q ticket.Query) *gorm.DB {
	if q.OwnerID != nil {
		db = db.Where("tickets.user_id = ?", *q.OwnerID)
	}
	if q.StatusID != nil {
		db = db.Where("tickets.status_id = ?", *q.StatusID)
	} else if q.Status != "" {
		db = db.Where("statuses.name = ?", q.Status)
	}
	if q.Search != "" {
		pattern := "%" + escapeLike(q.Search) + "%"
		db = db.Where(`(LOWER(tickets.title) LIKE ? ESCAPE '\' OR LOWER(tickets.description) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	if q.DateFrom != nil {
		db = db.Where("tickets.created_at >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		db = db.Where("tickets.created_at <= ?", *q.DateTo)
	}
	return db
}

func (r *DBTicketRepo) ListTickets(ctx context.Context, q ticket.Query) ([]ticket.Ticket, int64, error) {
	tickets := []ticket.Ticket{}

	var total int64
	if err := applyTicketFilters(r.joined(ctx), q).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return tickets, 0, nil
	}

	sortBy := q.SortBy
	if !SortColumns[sortBy] {
		sortBy = "created_at"
	}
	dir := "ASC"
	if q.SortDesc {
		dir = "DESC"
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 10
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	// Pages past the last row are empty. Checking this first also keeps the
	// offset below total, so it cannot overflow for huge page numbers.
	if int64(page-1) >= (total+int64(perPage)-1)/int64(perPage) {
		return tickets, total, nil
	}

	query := applyTicketFilters(r.joined(ctx), q).
		Select(ticketColumns).
		Order("tickets." + sortBy + " " + dir)
	if sortBy != "id" {
		query = query.Order("tickets.id " + dir)
	}
	err := query.
		Limit(perPage).
		Offset((page - 1) * perPage).
		Preload("Tags", tagsByName).
		Find(&tickets).Error
	if err != nil {
		return nil, 0, err
	}
	for i := range tickets {
		if tickets[i].Tags == nil {
			tickets[i].Tags = []tag.Tag{}
		}
	}
	return tickets, total, nil
}

func (r *DBTicketRepo) UpdateTicketStatus(ctx context.Context, id, statusID uint) error {
	return r.db.WithContext(ctx).
		Model(&ticket.Ticket{}).
		Where("id = ?", id).
		Updates(map[string]any{"status_id": statusID, "updated_at": time.Now().UTC()}).Error
}

func (r *DBTicketRepo) SyncTags(ctx context.Context, id uint, tagIDs []uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("ticket_id = ?", id).Delete(&ticket.TicketTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) > 0 {
		rows := make([]ticket.TicketTag, 0, len(tagIDs))
		for _, tagID := range tagIDs {
			rows = append(rows, ticket.TicketTag{TicketID: id, TagID: tagID})
		}
		if err := db.Create(&rows).Error; err != nil {
			return err
		}
	}
	return db.Model(&ticket.Ticket{}).Where("id = ?", id).UpdateColumn("updated_at", time.Now().UTC()).Error
}

func (r *DBTicketRepo) ListTagIDs(ctx context.Context, id uint) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).
		Model(&ticket.TicketTag{}).
		Where("ticket_id = ?", id).
		Order("tag_id ASC").
		Pluck("tag_id", &ids).Error
	return ids, err
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{db: tx}
}
