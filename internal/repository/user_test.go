package repository_test

import (
	"context"
	"testing"

	"github.com/linskybing/support-tracker/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserRepo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	got, err := f.repos.User.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, f.alice.ID, got.ID)

	got, err = f.repos.User.GetUserByID(ctx, f.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, got.Role)

	_, err = f.repos.User.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	dup := user.User{Email: "alice@example.com", Password: "hashed", Role: user.RoleClient}
	assert.ErrorIs(t, f.repos.User.CreateUser(ctx, &dup), gorm.ErrDuplicatedKey)
}
