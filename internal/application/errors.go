package application

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindUnauthenticated
	KindForbidden
	KindValidation
	KindBadRequest
)

// AppError is an error meant to be shown to the caller.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func newError(kind ErrorKind, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticated(msg string) *AppError { return &AppError{Kind: KindUnauthenticated, Message: msg} }
func Forbidden(msg string) *AppError       { return &AppError{Kind: KindForbidden, Message: msg} }
func Validation(msg string) *AppError      { return &AppError{Kind: KindValidation, Message: msg} }
func BadRequest(msg string) *AppError      { return &AppError{Kind: KindBadRequest, Message: msg} }

var (
	ErrUnauthenticated    = Unauthenticated("unauthenticated")
	ErrForbidden          = Forbidden("forbidden")
	ErrInvalidCredentials = Validation("invalid credentials")
	ErrTicketNotFound     = Validation("ticket not found")
	ErrTagNotFound        = Validation("tag not found")
	ErrStatusNotFound     = Validation("status not found")
	ErrAttachmentNotFound = Validation("attachment not found")
	ErrNoStatus           = Validation("no ticket status configured")
	ErrEmailTaken         = Validation("email already registered")
	ErrStatusNameTaken    = Validation("status name already exists")
	ErrAttachmentsOff     = BadRequest("attachments are disabled")
)

// KindOf reports the kind of err, or KindInternal when err is not an AppError.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func translateNotFound(err error, notFound *AppError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// translateDuplicate maps a unique index violation to dup. The pre-insert
// lookups catch the common case; this covers two writers racing past them.
func translateDuplicate(err error, dup *AppError) error {
	if IsDuplicateKey(err) {
		return dup
	}
	return err
}

// IsDuplicateKey reports whether err is a unique constraint failure, either
// translated by gorm or raised raw by the Postgres driver.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
