package db

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/linskybing/support-tracker/internal/config"
	"github.com/linskybing/support-tracker/internal/domain/attachment"
	"github.com/linskybing/support-tracker/internal/domain/audit"
	"github.com/linskybing/support-tracker/internal/domain/session"
	"github.com/linskybing/support-tracker/internal/domain/status"
	"github.com/linskybing/support-tracker/internal/domain/tag"
	"github.com/linskybing/support-tracker/internal/domain/ticket"
	"github.com/linskybing/support-tracker/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the Postgres connection described by config and migrates the schema.
func Init() error {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
	)

	conn, err := gorm.Open(postgres.Open(dsn), GormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(conn); err != nil {
		return err
	}

	DB = conn
	slog.Info("database connected and migrated", "host", config.DbHost, "db", config.DbName)
	return nil
}

// GormConfig keeps timestamps in UTC, only lets gorm log at debug level and
// reports unique violations as gorm.ErrDuplicatedKey on every dialect.
func GormConfig() *gorm.Config {
	level := logger.Warn
	if strings.EqualFold(config.LogLevel, "debug") {
		level = logger.Info
	}
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	}
}

// Migrate creates or updates every table and secondary index. It can be run
// repeatedly against the same database.
func Migrate(conn *gorm.DB) error {
	if err := conn.SetupJoinTable(&ticket.Ticket{}, "Tags", &ticket.TicketTag{}); err != nil {
		return fmt.Errorf("failed to set up ticket_tags join table: %w", err)
	}

	if err := conn.AutoMigrate(
		&user.User{},
		&status.Status{},
		&tag.Tag{},
		&ticket.Ticket{},
		&ticket.TicketTag{},
		&ticket.Reply{},
		&session.Session{},
		&audit.AuditLog{},
		&attachment.Attachment{},
	); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	return createIndexes(conn)
}

func createIndexes(conn *gorm.DB) error {
	indexes := []string{
		`CREATE INDEX idx_tickets_user_created ON tickets (user_id, created_at)`,
		`CREATE INDEX idx_tickets_status_created ON tickets (status_id, created_at)`,
		`CREATE INDEX idx_replies_ticket_created ON replies (ticket_id, created_at)`,
	}

	for _, stmt := range indexes {
		if err := conn.Exec(stmt).Error; err != nil {
			if isAlreadyExists(err) {
				continue
			}
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

func isAlreadyExists(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate")
}
