package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/support-tracker/internal/domain/attachment"
	"github.com/linskybing/support-tracker/internal/domain/audit"
	"github.com/linskybing/support-tracker/internal/repository"
	"github.com/linskybing/support-tracker/pkg/types"
)

// ObjectStore holds attachment bodies. *storage.MinioStore satisfies it.
type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, r io.Reader, size int64) error
	GetObject(ctx context.Context, key string) (io.ReadCloser, error)
	RemoveObject(ctx context.Context, key string) error
}

type AttachmentService struct {
	Repos    *repository.Repos
	Store    ObjectStore
	MaxBytes int64
}

func NewAttachmentService(repos *repository.Repos, store ObjectStore, maxBytes int64) *AttachmentService {
	return &AttachmentService{
		Repos:    repos,
		Store:    store,
		MaxBytes: maxBytes,
	}
}

// UploadInput describes one uploaded file.
type UploadInput struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (s *AttachmentService) enabled() bool {
	return s != nil && s.Store != nil
}

// visibleTicket loads the ticket row and applies the owner-or-admin rule.
func (s *AttachmentService) visibleTicket(ctx context.Context, actor *types.Identity, ticketID uint) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	t, err := s.Repos.Ticket.GetTicketByID(ctx, ticketID)
	if err != nil {
		return translateNotFound(err, ErrTicketNotFound)
	}
	if !CanView(actor, t) {
		return ErrForbidden
	}
	return nil
}

// ObjectKey builds the storage key of an attachment.
func ObjectKey(ticketID uint, fileName string) string {
	return fmt.Sprintf("tickets/%d/%s-%s", ticketID, uuid.NewString(), fileName)
}

func cleanFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func (s *AttachmentService) Upload(ctx context.Context, actor *types.Identity, ticketID uint, input UploadInput) (attachment.Attachment, error) {
	if !s.enabled() {
		return attachment.Attachment{}, ErrAttachmentsOff
	}
	if err := s.visibleTicket(ctx, actor, ticketID); err != nil {
		return attachment.Attachment{}, err
	}

	name := cleanFileName(input.FileName)
	if name == "" {
		return attachment.Attachment{}, Validation("file name is required")
	}
	if input.Size <= 0 {
		return attachment.Attachment{}, Validation("file is empty")
	}
	if s.MaxBytes > 0 && input.Size > s.MaxBytes {
		return attachment.Attachment{}, newError(KindValidation, "file exceeds %d bytes", s.MaxBytes)
	}
	contentType := input.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := ObjectKey(ticketID, name)
	if err := s.Store.PutObject(ctx, key, contentType, input.Body, input.Size); err != nil {
		return attachment.Attachment{}, fmt.Errorf("store attachment: %w", err)
	}

	a := attachment.Attachment{
		TicketID:    ticketID,
		UploaderID:  actor.UserID,
		FileName:    name,
		ContentType: contentType,
		Size:        input.Size,
		ObjectKey:   key,
	}
	err := s.Repos.ExecTx(func(repos *repository.Repos) error {
		if err := repos.Attachment.CreateAttachment(ctx, &a); err != nil {
			return err
		}
		return logTicketAudit(ctx, repos.Audit, actor.UserID, audit.ActionAttachmentAdded, ticketID, nil, a, "attachment added")
	})
	if err != nil {
		if rmErr := s.Store.RemoveObject(ctx, key); rmErr != nil {
			slog.Warn("failed to remove orphaned object", "key", key, "error", rmErr)
		}
		return attachment.Attachment{}, err
	}
	return a, nil
}

func (s *AttachmentService) List(ctx context.Context, actor *types.Identity, ticketID uint) ([]attachment.Attachment, error) {
	if !s.enabled() {
		return nil, ErrAttachmentsOff
	}
	if err := s.visibleTicket(ctx, actor, ticketID); err != nil {
		return nil, err
	}
	return s.Repos.Attachment.ListAttachments(ctx, ticketID)
}

// Open returns the attachment record and a reader over its body. The caller
// closes the reader.
func (s *AttachmentService) Open(ctx context.Context, actor *types.Identity, ticketID, attachmentID uint) (attachment.Attachment, io.ReadCloser, error) {
	if !s.enabled() {
		return attachment.Attachment{}, nil, ErrAttachmentsOff
	}
	if err := s.visibleTicket(ctx, actor, ticketID); err != nil {
		return attachment.Attachment{}, nil, err
	}
	a, err := s.Repos.Attachment.GetAttachment(ctx, ticketID, attachmentID)
	if err != nil {
		return attachment.Attachment{}, nil, translateNotFound(err, ErrAttachmentNotFound)
	}
	body, err := s.Store.GetObject(ctx, a.ObjectKey)
	if err != nil {
		return attachment.Attachment{}, nil, fmt.Errorf("open attachment: %w", err)
	}
	return a, body, nil
}
