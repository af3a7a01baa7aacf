package repository_test

import (
	"context"
	"testing"

	"github.com/linskybing/support-tracker/internal/domain/audit"
	"github.com/linskybing/support-tracker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLogs_NewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resourceType := audit.ResourceTicket
	for i, action := range []string{audit.ActionTicketCreated, audit.ActionTicketStatusChanged, audit.ActionTicketReplied} {
		entry := audit.AuditLog{
			UserID:       f.admin.ID,
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   "7",
			CreatedAt:    day(i + 1),
		}
		require.NoError(t, f.repos.Audit.CreateAuditLog(ctx, &entry))
	}
	other := audit.AuditLog{UserID: f.admin.ID, Action: audit.ActionTicketCreated, ResourceType: resourceType, ResourceID: "8"}
	require.NoError(t, f.repos.Audit.CreateAuditLog(ctx, &other))

	resourceID := "7"
	logs, err := f.repos.Audit.GetAuditLogs(ctx, repository.AuditQueryParams{
		ResourceType: &resourceType,
		ResourceID:   &resourceID,
	})
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, audit.ActionTicketReplied, logs[0].Action)
	assert.Equal(t, audit.ActionTicketCreated, logs[2].Action)

	action := audit.ActionTicketStatusChanged
	logs, err = f.repos.Audit.GetAuditLogs(ctx, repository.AuditQueryParams{Action: &action, Limit: 5})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "7", logs[0].ResourceID)
}
