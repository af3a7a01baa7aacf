package application

import (
	"context"
	"sort"
	"strings"

	"github.com/linskybing/support-tracker/internal/domain/audit"
	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"github.com/linskybing/support-tracker/internal/repository"
	"github.com/linskybing/support-tracker/pkg/types"
)

type TicketAdminService struct {
	Repos *repository.Repos
}

func NewTicketAdminService(repos *repository.Repos) *TicketAdminService {
	return &TicketAdminService{
		Repos: repos,
	}
}

type statusChange struct {
	StatusID uint `json:"status_id"`
}

type tagSet struct {
	Tags []uint `json:"tags"`
}

// Update changes the status and/or replaces the tag set of a ticket in a
// single transaction and returns the refreshed ticket.
func (s *TicketAdminService) Update(ctx context.Context, actor *types.Identity, id uint, input ticket.UpdateTicketInput) (ticket.Ticket, error) {
	if actor == nil {
		return ticket.Ticket{}, ErrUnauthenticated
	}
	if !actor.IsAdmin() {
		return ticket.Ticket{}, ErrForbidden
	}

	err := s.Repos.ExecTx(func(repos *repository.Repos) error {
		current, err := repos.Ticket.GetTicketByID(ctx, id)
		if err != nil {
			return translateNotFound(err, ErrTicketNotFound)
		}

		if input.StatusID != nil && *input.StatusID != 0 {
			statusID := *input.StatusID
			if _, err := repos.Status.GetStatusByID(ctx, statusID); err != nil {
				return translateNotFound(err, ErrStatusNotFound)
			}
			if err := repos.Ticket.UpdateTicketStatus(ctx, id, statusID); err != nil {
				return err
			}
			if statusID != current.StatusID {
				err := logTicketAudit(ctx, repos.Audit, actor.UserID, audit.ActionTicketStatusChanged, id,
					statusChange{StatusID: current.StatusID}, statusChange{StatusID: statusID}, "status changed")
				if err != nil {
					return err
				}
			}
		}

		if input.Tags != nil {
			tagIDs := UniqueIDs(*input.Tags)
			if err := validateTagIDs(ctx, repos, tagIDs); err != nil {
				return err
			}
			before, err := repos.Ticket.ListTagIDs(ctx, id)
			if err != nil {
				return err
			}
			if err := repos.Ticket.SyncTags(ctx, id, tagIDs); err != nil {
				return err
			}
			return logTicketAudit(ctx, repos.Audit, actor.UserID, audit.ActionTicketTagsSynced, id,
				tagSet{Tags: before}, tagSet{Tags: tagIDs}, "tags synced")
		}
		return nil
	})
	if err != nil {
		return ticket.Ticket{}, err
	}

	return s.Repos.Ticket.GetTicketWithRelations(ctx, id)
}

func validateTagIDs(ctx context.Context, repos *repository.Repos, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if ids[0] == 0 {
		return Validation("invalid tag id 0")
	}
	n, err := repos.Tag.CountTagsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if n != int64(len(ids)) {
		return newError(KindValidation, "unknown tag ids in %v", ids)
	}
	return nil
}

// UniqueIDs returns ids sorted ascending with duplicates removed.
func UniqueIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// AddReply records an admin reply and returns it with the author's email.
func (s *TicketAdminService) AddReply(ctx context.Context, ticketID, adminID uint, message string) (ticket.Reply, error) {
	body := strings.TrimSpace(message)
	if body == "" {
		return ticket.Reply{}, Validation("message is required")
	}

	var reply ticket.Reply
	err := s.Repos.ExecTx(func(repos *repository.Repos) error {
		if _, err := repos.Ticket.GetTicketByID(ctx, ticketID); err != nil {
			return translateNotFound(err, ErrTicketNotFound)
		}

		reply = ticket.Reply{
			TicketID: ticketID,
			AdminID:  adminID,
			Body:     body,
		}
		if err := repos.Reply.CreateReply(ctx, &reply); err != nil {
			return err
		}
		return logTicketAudit(ctx, repos.Audit, adminID, audit.ActionTicketReplied, ticketID, nil, reply, "reply added")
	})
	if err != nil {
		return ticket.Reply{}, err
	}

	return s.Repos.Reply.GetReplyByID(ctx, reply.ID)
}
