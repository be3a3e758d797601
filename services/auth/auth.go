package authService

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"reachout/middleware"
	"reachout/models"
	"reachout/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("admin user already exists")
	ErrNotFound           = errors.New("admin user not found")
)

// Session is what a successful login hands back to the client.
type Session struct {
	Admin     *models.AdminUser
	Token     string
	ExpiresAt time.Time
}

// Service authenticates administrators and manages their accounts.
type Service struct {
	admins repository.AdminStore
	tokens *middleware.TokenManager
	cost   int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewService builds the gateway; cost is the bcrypt cost used for new hashes.
func NewService(admins repository.AdminStore, tokens *middleware.TokenManager, cost int) *Service {
	return &Service{admins: admins, tokens: tokens, cost: cost}
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate checks the credentials and issues a token. Unknown email and
// wrong password both return ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	admin, err := s.admins.FindByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		// burn a comparison so both failure paths cost the same
		_ = bcrypt.CompareHashAndPassword(s.placeholderHash(), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.GenerateJWT(admin.ID, admin.Email, middleware.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &Session{Admin: admin, Token: token, ExpiresAt: expiresAt}, nil
}

// CurrentAdmin re-reads the account behind a principal so the caller gets
// the stored profile, not the token payload.
func (s *Service) CurrentAdmin(ctx context.Context, principal *middleware.Principal) (*models.AdminUser, error) {
	admin, err := s.admins.FindByID(ctx, principal.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find admin %d: %w", principal.ID, err)
	}
	return admin, nil
}

// CreateAdministrator inserts a new account unless the email is taken.
func (s *Service) CreateAdministrator(ctx context.Context, email, password string) (*models.AdminUser, error) {
	email = NormalizeEmail(email)

	_, err := s.admins.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrAlreadyExists
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("find admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &models.AdminUser{Email: email, PasswordHash: string(hash)}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// Bootstrap creates the first administrator. It does nothing and returns
// false when any administrator already exists.
func (s *Service) Bootstrap(ctx context.Context, email, password string) (*models.AdminUser, bool, error) {
	total, err := s.admins.Count(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("count admins: %w", err)
	}
	if total > 0 {
		return nil, false, nil
	}

	admin, err := s.CreateAdministrator(ctx, email, password)
	if err != nil {
		return nil, false, err
	}
	return admin, true, nil
}

func (s *Service) placeholderHash() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("placeholder-password"), s.cost)
	})
	return s.dummyHash
}
