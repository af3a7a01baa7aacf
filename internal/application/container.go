package application

import (
	"github.com/linskybing/support-tracker/internal/config"
	"github.com/linskybing/support-tracker/internal/repository"
)

type Services struct {
	Auth        *AuthService
	Ticket      *TicketService
	TicketAdmin *TicketAdminService
	Tag         *TagService
	Status      *StatusService
	Audit       *AuditService
	Attachment  *AttachmentService
}

// New wires the services. store may be nil, which disables attachments.
func New(repos *repository.Repos, store ObjectStore) *Services {
	return &Services{
		Auth:        NewAuthService(repos),
		Ticket:      NewTicketService(repos),
		TicketAdmin: NewTicketAdminService(repos),
		Tag:         NewTagService(repos),
		Status:      NewStatusService(repos),
		Audit:       NewAuditService(repos),
		Attachment:  NewAttachmentService(repos, store, config.AttachmentMaxBytes),
	}
}
