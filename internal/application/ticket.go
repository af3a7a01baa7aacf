package application

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/linskybing/support-tracker/internal/domain/audit"
	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"github.com/linskybing/support-tracker/internal/repository"
	"github.com/linskybing/support-tracker/pkg/types"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

type TicketService struct {
	Repos *repository.Repos
}

func NewTicketService(repos *repository.Repos) *TicketService {
	return &TicketService{
		Repos: repos,
	}
}

// List returns one page of tickets visible to actor. Clients only ever see
// their own tickets; admins see everyone's when params.Scope is "all".
func (s *TicketService) List(ctx context.Context, actor *types.Identity, params ticket.ListParams) (ticket.Page, error) {
	if actor == nil {
		return ticket.Page{}, ErrUnauthenticated
	}

	q, err := BuildQuery(actor, params)
	if err != nil {
		return ticket.Page{}, err
	}

	rows, total, err := s.Repos.Ticket.ListTickets(ctx, q)
	if err != nil {
		return ticket.Page{}, err
	}
	if rows == nil {
		rows = []ticket.Ticket{}
	}

	return ticket.Page{
		Data: rows,
		Meta: ticket.PageMeta{
			Total:   total,
			Page:    q.Page,
			PerPage: q.PerPage,
			Pages:   PageCount(total, q.PerPage),
		},
	}, nil
}

// BuildQuery normalizes raw list parameters into a store query.
func BuildQuery(actor *types.Identity, params ticket.ListParams) (ticket.Query, error) {
	q := ticket.Query{
		Search:   strings.TrimSpace(params.Search),
		SortBy:   "created_at",
		SortDesc: true,
		Page:     1,
		PerPage:  DefaultPerPage,
	}

	if !(actor.IsAdmin() && params.Scope == "all") {
		ownerID := actor.UserID
		q.OwnerID = &ownerID
	}

	if status := strings.TrimSpace(params.Status); status != "" {
		if id, err := strconv.ParseUint(status, 10, 64); err == nil {
			statusID := uint(id)
			q.StatusID = &statusID
		} else {
			q.Status = status
		}
	}

	if raw := strings.TrimSpace(params.DateFrom); raw != "" {
		from, _, err := parseDate(raw)
		if err != nil {
			return q, Validation("invalid dateFrom")
		}
		q.DateFrom = &from
	}
	if raw := strings.TrimSpace(params.DateTo); raw != "" {
		to, dateOnly, err := parseDate(raw)
		if err != nil {
			return q, Validation("invalid dateTo")
		}
		if dateOnly {
			to = to.Add(24*time.Hour - time.Microsecond)
		}
		q.DateTo = &to
	}

	if sort := strings.TrimSpace(params.Sort); sort != "" {
		field, dir, _ := strings.Cut(strings.ToLower(sort), ":")
		if repository.SortColumns[field] {
			q.SortBy = field
		}
		q.SortDesc = dir != "asc"
	}

	if page, err := strconv.Atoi(strings.TrimSpace(params.Page)); err == nil && page > 1 {
		q.Page = page
	}
	if perPage, err := strconv.Atoi(strings.TrimSpace(params.PerPage)); err == nil && perPage >= 1 && perPage <= MaxPerPage {
		q.PerPage = perPage
	}

	return q, nil
}

// PageCount is ceil(total/perPage), never less than 1.
func PageCount(total int64, perPage int) int {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		return 1
	}
	return pages
}

// parseDate accepts YYYY-MM-DD or RFC 3339 and returns the instant in UTC.
// dateOnly reports whether the value had no time component.
func parseDate(raw string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.DateOnly, raw); err == nil {
		return t.UTC(), true, nil
	}
	if t, err = time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), false, nil
	}
	return time.Time{}, false, err
}

// FindByID loads a ticket with tags and replies. Clients may only see their own.
func (s *TicketService) FindByID(ctx context.Context, actor *types.Identity, id uint) (ticket.Ticket, error) {
	if actor == nil {
		return ticket.Ticket{}, ErrUnauthenticated
	}
	t, err := s.Repos.Ticket.GetTicketWithRelations(ctx, id)
	if err != nil {
		return ticket.Ticket{}, translateNotFound(err, ErrTicketNotFound)
	}
	if !CanView(actor, t) {
		return ticket.Ticket{}, ErrForbidden
	}
	return t, nil
}

// CanView reports whether actor owns t or is an admin.
func CanView(actor *types.Identity, t ticket.Ticket) bool {
	return actor != nil && (actor.IsAdmin() || t.UserID == actor.UserID)
}

// Create files a new ticket for ownerID in the default status.
func (s *TicketService) Create(ctx context.Context, ownerID uint, input ticket.CreateTicketInput) (ticket.Ticket, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return ticket.Ticket{}, Validation("title and description are required")
	}

	var created ticket.Ticket
	err := s.Repos.ExecTx(func(repos *repository.Repos) error {
		st, err := repos.Status.GetDefaultStatus(ctx)
		if err != nil {
			return translateNotFound(err, ErrNoStatus)
		}

		created = ticket.Ticket{
			UserID:      ownerID,
			Title:       title,
			Description: description,
			StatusID:    st.ID,
		}
		if err := repos.Ticket.CreateTicket(ctx, &created); err != nil {
			return err
		}

		return logTicketAudit(ctx, repos.Audit, ownerID, audit.ActionTicketCreated, created.ID, nil, created, "ticket created")
	})
	if err != nil {
		return ticket.Ticket{}, err
	}

	return s.Repos.Ticket.GetTicketWithRelations(ctx, created.ID)
}
