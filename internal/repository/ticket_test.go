package repository_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/linskybing/support-tracker/internal/domain/tag"
	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"github.com/linskybing/support-tracker/internal/domain/user"
	"github.com/linskybing/support-tracker/internal/repository"
	"github.com/linskybing/support-tracker/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db       *gorm.DB
	repos    *repository.Repos
	statuses []uint
	alice    user.User
	bob      user.User
	admin    user.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conn := testutils.NewSQLiteDB(t)
	f := &fixture{
		db:       conn,
		repos:    repository.NewRepositories(conn),
		statuses: testutils.SeedStatuses(t, conn),
	}
	f.alice = f.user(t, "alice@example.com", user.RoleClient)
	f.bob = f.user(t, "bob@example.com", user.RoleClient)
	f.admin = f.user(t, "admin@example.com", user.RoleAdmin)
	return f
}

func (f *fixture) user(t *testing.T, email string, role user.Role) user.User {
	t.Helper()
	u := user.User{Email: email, Password: "hashed", Role: role}
	require.NoError(t, f.repos.User.CreateUser(context.Background(), &u))
	return u
}

func (f *fixture) ticket(t *testing.T, owner uint, title string, statusID uint, created time.Time) ticket.Ticket {
	t.Helper()
	tk := ticket.Ticket{
		UserID:      owner,
		Title:       title,
		Description: "details of " + title,
		StatusID:    statusID,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	require.NoError(t, f.repos.Ticket.CreateTicket(context.Background(), &tk))
	return tk
}

func (f *fixture) tag(t *testing.T, name string) tag.Tag {
	t.Helper()
	tg := tag.Tag{Name: name, Color: tag.DefaultColor}
	require.NoError(t, f.repos.Tag.CreateTag(context.Background(), &tg))
	return tg
}

func ids(tickets []ticket.Ticket) []uint {
	out := make([]uint, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.ID)
	}
	return out
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 10, 0, 0, 0, time.UTC)
}

func TestListTickets_OwnerFilter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a1 := f.ticket(t, f.alice.ID, "alice one", f.statuses[0], day(1))
	f.ticket(t, f.bob.ID, "bob one", f.statuses[0], day(2))
	a2 := f.ticket(t, f.alice.ID, "alice two", f.statuses[1], day(3))

	owner := f.alice.ID
	rows, total, err := f.repos.Ticket.ListTickets(ctx, ticket.Query{OwnerID: &owner, SortBy: "created_at", SortDesc: true, Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, []uint{a2.ID, a1.ID}, ids(rows))
	for _, r := range rows {
		assert.Equal(t, "alice@example.com", r.UserEmail)
		assert.NotNil(t, r.Tags)
	}

	rows, total, err = f.repos.Ticket.ListTickets(ctx, ticket.Query{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, rows, 3)
}

func TestListTickets_StatusIDAndNameAgree(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ticket(t, f.alice.ID, "todo", f.statuses[0], day(1))
	inProgress := f.ticket(t, f.alice.ID, "doing", f.statuses[1], day(2))

	byID := f.statuses[1]
	rowsByID, totalByID, err := f.repos.Ticket.ListTickets(ctx, ticket.Query{StatusID: &byID, Page: 1, PerPage: 10})
	require.NoError(t, err)

	rowsByName, totalByName, err := f.repos.Ticket.ListTickets(ctx, ticket.Query{Status: "InProgress", Page: 1, PerPage: 10})
	require.NoError(t, err)

	assert.EqualValues(t, 1, totalByID)
	assert.Equal(t, totalByID, totalByName)
	assert.Equal(t, []uint{inProgress.ID}, ids(rowsByID))
	assert.Equal(t, ids(rowsByID), ids(rowsByName))
	assert.Equal(t, "InProgress", rowsByName[0].StatusName)

	rows, total, err := f.repos.Ticket.ListTickets(ctx, ticket.Query{Status: "No Such Status", Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestListTickets_SearchIsLiteralAndCaseInsensitive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	percent := f.ticket(t, f.alice.ID, "Disk 100% full", f.statuses[0], day(1))
	f.ticket(t, f.alice.ID, "Disk 1000 sectors", f.statuses[0], day(2))
	underscore := f.ticket(t, f.alice.ID, "value a_b wrong", f.statuses[0], day(3))
	f.ticket(t, f.alice.ID, "value axb wrong", f.statuses[0], day(4))
	printer := f.ticket(t, f.alice.ID, "printer jam", f.statuses[0], day(5))

	cases := []struct {
		search string
		want   []uint
	}{
		{"100%", []uint{percent.ID}},
		{"a_b", []uint{underscore.ID}},
		{"PRINTER", []uint{printer.ID}},
		{"details of printer", []uint{printer.ID}},
	}
	for _, tc := range cases {
		t.Run(tc.search, func(t *testing.T) {
			rows, total, err := f.repos.Ticket.ListTickets(ctx, ticket.Query{Search: tc.search, Page: 1, PerPage: 10})
			require.NoError(t, err)
			assert.EqualValues(t, len(tc.want), total)
			assert.Equal(t, tc.want, ids(rows))
		})
	}
}

func TestListTickets_DateRangeIsInclusive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ticket(t, f.alice.ID, "first", f.statuses[0], day(1))
	second := f.ticket(t, f.alice.ID, "second", f.statuses[0], day(2))
	third := f.ticket(t, f.alice.ID, "third", f.statuses[0], day(3))
	f.ticket(t, f.alice.ID, "fourth", f.statuses[0], day(4))

	from := day(2)
	to := day(3)
	rows, total, err := f.repos.Ticket.ListTickets(ctx, ticket.Query{
		DateFrom: &from,
		DateTo:   &to,
		SortBy:   "created_at",
		Page:     1,
		PerPage:  10,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, []uint{second.ID, third.ID}, ids(rows))
}

func TestListTickets_PaginationAndSort(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var created []uint
	for i := 1; i <= 5; i++ {
		created = append(created, f.ticket(t, f.alice.ID, "ticket", f.statuses[0], day(i)).ID)
	}

	rows, total, err := f.repos.Ticket.ListTickets(ctx, ticket.Query{SortBy: "created_at", Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Equal(t, created[:2], ids(rows))

	rows, total, err = f.repos.Ticket.ListTickets(ctx, ticket.Query{SortBy: "created_at", Page: 3, PerPage: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Equal(t, created[4:], ids(rows))

	rows, total, err = f.repos.Ticket.ListTickets(ctx, ticket.Query{SortBy: "created_at", Page: 4, PerPage: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Empty(t, rows)

	rows, _, err = f.repos.Ticket.ListTickets(ctx, ticket.Query{SortBy: "id", SortDesc: true, Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, []uint{created[4], created[3], created[2], created[1], created[0]}, ids(rows))

	// Unknown columns fall back to created_at.
	rows, _, err = f.repos.Ticket.ListTickets(ctx, ticket.Query{SortBy: "title; DROP TABLE tickets", Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, created, ids(rows))
}

func TestListTickets_PageBeyondLastRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		f.ticket(t, f.alice.ID, "ticket", f.statuses[0], day(i))
	}

	for _, page := range []int{2, 1 << 40, math.MaxInt / 10, math.MaxInt} {
		rows, total, err := f.repos.Ticket.ListTickets(ctx, ticket.Query{SortBy: "created_at", Page: page, PerPage: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total, "page=%d", page)
		assert.Empty(t, rows, "page=%d", page)
	}
}

func TestListTickets_TiesBrokenByID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.ticket(t, f.alice.ID, "same time a", f.statuses[0], day(1))
	b := f.ticket(t, f.alice.ID, "same time b", f.statuses[0], day(1))
	c := f.ticket(t, f.alice.ID, "same time c", f.statuses[0], day(1))

	rows, _, err := f.repos.Ticket.ListTickets(ctx, ticket.Query{SortBy: "created_at", SortDesc: true, Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, []uint{c.ID, b.ID, a.ID}, ids(rows))

	rows, _, err = f.repos.Ticket.ListTickets(ctx, ticket.Query{SortBy: "created_at", Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, b.ID, c.ID}, ids(rows))
}

func TestSyncTags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.ticket(t, f.alice.ID, "tagged", f.statuses[0], day(1))
	urgent := f.tag(t, "urgent")
	billing := f.tag(t, "billing")

	t.Run("replaces the set and is idempotent", func(t *testing.T) {
		want := []uint{urgent.ID, billing.ID}
		if billing.ID < urgent.ID {
			want = []uint{billing.ID, urgent.ID}
		}
		for i := 0; i < 2; i++ {
			require.NoError(t, f.repos.Ticket.SyncTags(ctx, tk.ID, want))
			got, err := f.repos.Ticket.ListTagIDs(ctx, tk.ID)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}

		loaded, err := f.repos.Ticket.GetTicketWithRelations(ctx, tk.ID)
		require.NoError(t, err)
		require.Len(t, loaded.Tags, 2)
		assert.Equal(t, "billing", loaded.Tags[0].Name)
		assert.Equal(t, "urgent", loaded.Tags[1].Name)
		assert.True(t, loaded.UpdatedAt.After(tk.UpdatedAt))
	})

	t.Run("empty set clears every tag", func(t *testing.T) {
		require.NoError(t, f.repos.Ticket.SyncTags(ctx, tk.ID, []uint{}))
		got, err := f.repos.Ticket.ListTagIDs(ctx, tk.ID)
		require.NoError(t, err)
		assert.Empty(t, got)

		loaded, err := f.repos.Ticket.GetTicketWithRelations(ctx, tk.ID)
		require.NoError(t, err)
		assert.NotNil(t, loaded.Tags)
		assert.Empty(t, loaded.Tags)
	})
}

func TestDeleteTag_RemovesAssociations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.ticket(t, f.alice.ID, "tagged", f.statuses[0], day(1))
	keep := f.tag(t, "keep")
	drop := f.tag(t, "drop")
	require.NoError(t, f.repos.Ticket.SyncTags(ctx, tk.ID, []uint{keep.ID, drop.ID}))

	require.NoError(t, f.repos.Tag.DeleteTag(ctx, drop.ID))

	got, err := f.repos.Ticket.ListTagIDs(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{keep.ID}, got)

	_, err = f.repos.Tag.GetTagByID(ctx, drop.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	n, err := f.repos.Tag.CountTagsByIDs(ctx, []uint{keep.ID, drop.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestGetTicketWithRelations_Replies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.ticket(t, f.alice.ID, "needs help", f.statuses[0], day(1))

	loaded, err := f.repos.Ticket.GetTicketWithRelations(ctx, tk.ID)
	require.NoError(t, err)
	assert.NotNil(t, loaded.Replies)
	assert.Empty(t, loaded.Replies)
	assert.Equal(t, "ToDo", loaded.StatusName)

	first := ticket.Reply{TicketID: tk.ID, AdminID: f.admin.ID, Body: "first", CreatedAt: day(2)}
	second := ticket.Reply{TicketID: tk.ID, AdminID: f.admin.ID, Body: "second", CreatedAt: day(3)}
	require.NoError(t, f.repos.Reply.CreateReply(ctx, &second))
	require.NoError(t, f.repos.Reply.CreateReply(ctx, &first))

	loaded, err = f.repos.Ticket.GetTicketWithRelations(ctx, tk.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Replies, 2)
	assert.Equal(t, "first", loaded.Replies[0].Body)
	assert.Equal(t, "second", loaded.Replies[1].Body)
	assert.Equal(t, "admin@example.com", loaded.Replies[0].AdminEmail)

	reply, err := f.repos.Reply.GetReplyByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", reply.AdminEmail)

	_, err = f.repos.Ticket.GetTicketWithRelations(ctx, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateTicketStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.ticket(t, f.alice.ID, "move me", f.statuses[0], day(1))
	require.NoError(t, f.repos.Ticket.UpdateTicketStatus(ctx, tk.ID, f.statuses[2]))

	loaded, err := f.repos.Ticket.GetTicketByID(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, f.statuses[2], loaded.StatusID)
	assert.Equal(t, "Ready For Review", loaded.StatusName)
	assert.True(t, loaded.UpdatedAt.After(tk.UpdatedAt))
	assert.Equal(t, tk.CreatedAt.Unix(), loaded.CreatedAt.Unix())
}

func TestExecTx_RollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tk := f.ticket(t, f.alice.ID, "rollback", f.statuses[0], day(1))
	err := f.repos.ExecTx(func(repos *repository.Repos) error {
		if err := repos.Ticket.UpdateTicketStatus(ctx, tk.ID, f.statuses[3]); err != nil {
			return err
		}
		return gorm.ErrInvalidData
	})
	require.ErrorIs(t, err, gorm.ErrInvalidData)

	loaded, err := f.repos.Ticket.GetTicketByID(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, f.statuses[0], loaded.StatusID)
}
