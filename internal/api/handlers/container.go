package handlers

import (
	"time"

	"github.com/linskybing/support-tracker/internal/application"
)

type Handlers struct {
	Auth       *AuthHandler
	Ticket     *TicketHandler
	Tag        *TagHandler
	Status     *StatusHandler
	Attachment *AttachmentHandler
	Watch      *WatchHandler
}

func New(svc *application.Services, watchInterval time.Duration) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.Auth),
		Ticket:     NewTicketHandler(svc.Ticket, svc.TicketAdmin, svc.Audit),
		Tag:        NewTagHandler(svc.Tag),
		Status:     NewStatusHandler(svc.Status),
		Attachment: NewAttachmentHandler(svc.Attachment),
		Watch:      NewWatchHandler(svc.Ticket, watchInterval),
	}
}
