package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/linskybing/support-tracker/internal/domain/audit"
	"github.com/linskybing/support-tracker/internal/repository"
	"github.com/linskybing/support-tracker/pkg/types"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

// History lists the audit entries of a ticket, newest first. Admin only.
func (s *AuditService) History(ctx context.Context, actor *types.Identity, ticketID uint) ([]audit.AuditLog, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if _, err := s.Repos.Ticket.GetTicketByID(ctx, ticketID); err != nil {
		return nil, translateNotFound(err, ErrTicketNotFound)
	}

	resourceType := audit.ResourceTicket
	resourceID := strconv.FormatUint(uint64(ticketID), 10)
	return s.Repos.Audit.GetAuditLogs(ctx, repository.AuditQueryParams{
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
	})
}

// logTicketAudit writes an audit entry for a ticket on the given repo, which
// is expected to be bound to the surrounding transaction.
func logTicketAudit(
	ctx context.Context,
	repo repository.AuditRepo,
	userID uint,
	action string,
	ticketID uint,
	before any,
	after any,
	description string,
) error {
	var oldData, newData []byte
	var err error

	if before != nil {
		oldData, err = json.Marshal(before)
		if err != nil {
			slog.Warn("audit marshal old data", "error", err)
		}
	}
	if after != nil {
		newData, err = json.Marshal(after)
		if err != nil {
			slog.Warn("audit marshal new data", "error", err)
		}
	}

	meta := types.RequestMetaFrom(ctx)
	entry := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: audit.ResourceTicket,
		ResourceID:   strconv.FormatUint(uint64(ticketID), 10),
		OldData:      oldData,
		NewData:      newData,
		IPAddress:    meta.IP,
		UserAgent:    meta.UserAgent,
		Description:  description,
	}
	return repo.CreateAuditLog(ctx, entry)
}
