package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Status     StatusRepo
	Tag        TagRepo
	Ticket     TicketRepo
	Reply      ReplyRepo
	Audit      AuditRepo
	Attachment AttachmentRepo
	Session    SessionRepo

	db *gorm.DB
}

// NewRepositories wires the gorm-backed repositories. Sessions default to the
// database store; callers may swap in another SessionRepo afterwards.
func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Status:     NewStatusRepo(db),
		Tag:        NewTagRepo(db),
		Ticket:     NewTicketRepo(db),
		Reply:      NewReplyRepo(db),
		Audit:      NewAuditRepo(db),
		Attachment: NewAttachmentRepo(db),
		Session:    NewSessionRepo(db),
		db:         db,
	}
}

// WithTx returns a copy whose repositories run on tx. Sessions are not
// transactional and keep their store.
func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Status:     r.Status.WithTx(tx),
		Tag:        r.Tag.WithTx(tx),
		Ticket:     r.Ticket.WithTx(tx),
		Reply:      r.Reply.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		Attachment: r.Attachment.WithTx(tx),
		Session:    r.Session,
		db:         tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
