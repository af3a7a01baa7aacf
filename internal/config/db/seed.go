package db

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/linskybing/support-tracker/internal/config"
	"github.com/linskybing/support-tracker/internal/domain/status"
	"github.com/linskybing/support-tracker/internal/domain/tag"
	"github.com/linskybing/support-tracker/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

type SeedAdmin struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type SeedTag struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// SeedData describes the rows guaranteed to exist after Seed.
type SeedData struct {
	Statuses []string  `yaml:"statuses"`
	Tags     []SeedTag `yaml:"tags"`
	Admin    SeedAdmin `yaml:"admin"`
}

// DefaultSeedData is built from config: the stock statuses and the admin account.
func DefaultSeedData() SeedData {
	return SeedData{
		Statuses: append([]string(nil), config.DefaultStatuses...),
		Admin:    SeedAdmin{Email: config.AdminEmail, Password: config.AdminPassword},
	}
}

// LoadSeedFile reads a YAML seed file. Fields left empty fall back to
// DefaultSeedData.
func LoadSeedFile(path string) (SeedData, error) {
	data := DefaultSeedData()
	raw, err := os.ReadFile(path)
	if err != nil {
		return data, fmt.Errorf("failed to read seed file: %w", err)
	}

	var fromFile SeedData
	if err := yaml.Unmarshal(raw, &fromFile); err != nil {
		return data, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if len(fromFile.Statuses) > 0 {
		data.Statuses = fromFile.Statuses
	}
	data.Tags = fromFile.Tags
	if fromFile.Admin.Email != "" {
		data.Admin.Email = fromFile.Admin.Email
	}
	if fromFile.Admin.Password != "" {
		data.Admin.Password = fromFile.Admin.Password
	}
	return data, nil
}

// Seed inserts the missing statuses, tags and admin account. Existing rows
// are matched by name (or email) and left alone.
func Seed(conn *gorm.DB, data SeedData) error {
	return conn.Transaction(func(tx *gorm.DB) error {
		for _, name := range data.Statuses {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if err := tx.Where(status.Status{Name: name}).FirstOrCreate(&status.Status{}).Error; err != nil {
				return fmt.Errorf("failed to seed status %q: %w", name, err)
			}
		}

		for _, t := range data.Tags {
			name := strings.TrimSpace(t.Name)
			if name == "" {
				continue
			}
			color := t.Color
			if color == "" {
				color = tag.DefaultColor
			}
			if err := tx.Where(tag.Tag{Name: name}).Attrs(tag.Tag{Color: color}).FirstOrCreate(&tag.Tag{}).Error; err != nil {
				return fmt.Errorf("failed to seed tag %q: %w", name, err)
			}
		}

		email := strings.ToLower(strings.TrimSpace(data.Admin.Email))
		if email == "" {
			return nil
		}
		var existing user.User
		err := tx.Where("email = ?", email).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(data.Admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := user.User{Email: email, Password: string(hashed), Role: user.RoleAdmin}
		if err := tx.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin: %w", err)
		}
		slog.Info("seeded admin account", "email", email)
		return nil
	})
}
