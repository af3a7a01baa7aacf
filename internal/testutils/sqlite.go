package testutils

import (
	"testing"

	"github.com/linskybing/support-tracker/internal/config/db"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewSQLiteDB opens a private in-memory database with the full schema.
// A single connection keeps every query on the same in-memory database.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), db.GormConfig())
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(conn))
	return conn
}

// SeedStatuses inserts the stock statuses and returns them in id order.
func SeedStatuses(t *testing.T, conn *gorm.DB) []uint {
	t.Helper()
	require.NoError(t, db.Seed(conn, db.SeedData{
		Statuses: []string{"ToDo", "InProgress", "Ready For Review", "Done"},
	}))

	var ids []uint
	require.NoError(t, conn.Table("statuses").Order("id ASC").Pluck("id", &ids).Error)
	return ids
}
