package application

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/support-tracker/internal/config"
	"github.com/linskybing/support-tracker/internal/domain/session"
	"github.com/linskybing/support-tracker/internal/domain/user"
	"github.com/linskybing/support-tracker/internal/repository"
	"github.com/linskybing/support-tracker/pkg/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MinPasswordLength = 6

type AuthService struct {
	Repos      *repository.Repos
	SessionTTL time.Duration
	Now        func() time.Time
}

func NewAuthService(repos *repository.Repos) *AuthService {
	ttl := config.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		Repos:      repos,
		SessionTTL: ttl,
		Now:        time.Now,
	}
}

// NormalizeEmail trims and lower-cases an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail accepts a bare address such as "a@b.c", not "Name <a@b.c>".
func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email && strings.Contains(email, "@")
}

// Register creates an account with the given role and starts a session for it.
func (s *AuthService) Register(ctx context.Context, input user.RegisterInput, role user.Role) (user.User, session.Session, error) {
	email := NormalizeEmail(input.Email)
	if !ValidEmail(email) {
		return user.User{}, session.Session{}, Validation("invalid email")
	}
	if len(input.Password) < MinPasswordLength {
		return user.User{}, session.Session{}, Validation("password must be at least 6 characters")
	}
	if role == "" {
		role = user.RoleClient
	}
	if !role.Valid() {
		return user.User{}, session.Session{}, Validation("invalid role")
	}

	_, err := s.Repos.User.GetUserByEmail(ctx, email)
	if err == nil {
		return user.User{}, session.Session{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, session.Session{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, session.Session{}, err
	}

	usr := user.User{
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.Repos.User.CreateUser(ctx, &usr); err != nil {
		return user.User{}, session.Session{}, translateDuplicate(err, ErrEmailTaken)
	}

	sess, err := s.startSession(ctx, usr)
	if err != nil {
		return user.User{}, session.Session{}, err
	}
	return usr, sess, nil
}

// Login checks credentials. Unknown email and wrong password fail alike.
func (s *AuthService) Login(ctx context.Context, input user.LoginInput) (user.User, session.Session, error) {
	usr, err := s.Repos.User.GetUserByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, session.Session{}, ErrInvalidCredentials
		}
		return user.User{}, session.Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(input.Password)); err != nil {
		return user.User{}, session.Session{}, ErrInvalidCredentials
	}

	sess, err := s.startSession(ctx, usr)
	if err != nil {
		return user.User{}, session.Session{}, err
	}
	return usr, sess, nil
}

func (s *AuthService) startSession(ctx context.Context, usr user.User) (session.Session, error) {
	now := s.Now().UTC()
	sess := session.Session{
		ID:        uuid.NewString(),
		UserID:    usr.ID,
		Role:      usr.Role,
		ExpiresAt: now.Add(s.SessionTTL),
		CreatedAt: now,
	}
	if err := s.Repos.Session.CreateSession(ctx, &sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

// Logout ends a session. Unknown ids are ignored.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.Repos.Session.DeleteSession(ctx, sessionID)
}

// Resolve maps a session id to the caller's identity. It returns nil without
// error for unknown, expired or orphaned sessions; expired ones are removed.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (*types.Identity, error) {
	sess, err := s.Repos.Session.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if sess.Expired(s.Now()) {
		if err := s.Repos.Session.DeleteSession(ctx, sess.ID); err != nil {
			slog.Warn("failed to delete expired session", "session_id", sess.ID, "error", err)
		}
		return nil, nil
	}

	usr, err := s.Repos.User.GetUserByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &types.Identity{
		UserID:    usr.ID,
		Email:     usr.Email,
		Role:      sess.Role,
		SessionID: sess.ID,
	}, nil
}

// Me returns the caller's account, or nil when nobody is signed in.
func (s *AuthService) Me(ctx context.Context, identity *types.Identity) (*user.User, error) {
	if identity == nil {
		return nil, nil
	}
	usr, err := s.Repos.User.GetUserByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usr, nil
}

// PurgeExpiredSessions removes expired sessions from stores that do not
// expire them on their own. It reports how many were removed.
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	purger, ok := s.Repos.Session.(repository.SessionPurger)
	if !ok {
		return 0, nil
	}
	return purger.DeleteExpiredSessions(ctx, s.Now().UTC())
}
