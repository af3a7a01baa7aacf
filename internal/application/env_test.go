package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/linskybing/support-tracker/internal/application"
	"github.com/linskybing/support-tracker/internal/domain/audit"
	"github.com/linskybing/support-tracker/internal/domain/tag"
	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"github.com/linskybing/support-tracker/internal/domain/user"
	"github.com/linskybing/support-tracker/internal/repository"
	"github.com/linskybing/support-tracker/internal/testutils"
	"github.com/linskybing/support-tracker/pkg/types"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// env is a service stack over an in-memory database.
type env struct {
	db       *gorm.DB
	repos    *repository.Repos
	svc      *application.Services
	statuses []uint
	client   *types.Identity
	other    *types.Identity
	admin    *types.Identity
}

func newEnv(t *testing.T, store application.ObjectStore) *env {
	t.Helper()
	conn := testutils.NewSQLiteDB(t)
	repos := repository.NewRepositories(conn)
	e := &env{
		db:       conn,
		repos:    repos,
		svc:      application.New(repos, store),
		statuses: testutils.SeedStatuses(t, conn),
	}
	e.client = e.identity(t, "client@example.com", user.RoleClient)
	e.other = e.identity(t, "other@example.com", user.RoleClient)
	e.admin = e.identity(t, "admin@example.com", user.RoleAdmin)
	return e
}

func (e *env) identity(t *testing.T, email string, role user.Role) *types.Identity {
	t.Helper()
	u := user.User{Email: email, Password: "hashed", Role: role}
	require.NoError(t, e.repos.User.CreateUser(context.Background(), &u))
	return &types.Identity{UserID: u.ID, Email: u.Email, Role: u.Role}
}

func (e *env) ticket(t *testing.T, owner *types.Identity, title string) ticket.Ticket {
	t.Helper()
	tk, err := e.svc.Ticket.Create(context.Background(), owner.UserID, ticket.CreateTicketInput{
		Title:       title,
		Description: "please help with " + title,
	})
	require.NoError(t, err)
	return tk
}

func (e *env) tag(t *testing.T, name string) tag.Tag {
	t.Helper()
	tg, err := e.svc.Tag.Create(context.Background(), tag.TagInput{Name: name})
	require.NoError(t, err)
	return tg
}

func (e *env) history(t *testing.T, ticketID uint) []audit.AuditLog {
	t.Helper()
	logs, err := e.svc.Audit.History(context.Background(), e.admin, ticketID)
	require.NoError(t, err)
	return logs
}

func (e *env) backdate(t *testing.T, ticketID uint) time.Time {
	t.Helper()
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, e.db.Model(&ticket.Ticket{}).Where("id = ?", ticketID).UpdateColumn("updated_at", past).Error)
	return past
}

func ptr[T any](v T) *T {
	return &v
}
