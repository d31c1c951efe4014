package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"smm-panel/internal/config"
	"smm-panel/internal/model"
	"smm-panel/internal/repository"
)

var (
	ErrDatabaseNotConfigured = errors.New("database not configured")
	ErrMissingToken          = errors.New("missing admin token")
	ErrInvalidToken          = errors.New("invalid admin token")
	ErrAdminDisabled         = errors.New("admin disabled")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAdminExists           = errors.New("admin already exists")
)

// AuthResult is what a successful login hands back to the client. Token is
// the bearer value expected in X-Admin-Token on gated requests.
type AuthResult struct {
	Token string
	Name  string
	Role  string
}

type AuthService interface {
	// Login checks the email/password-hash pair and issues a token.
	Login(ctx context.Context, email, passwordHash string) (*AuthResult, error)
	// Authenticate resolves a bearer token to an active admin. It runs a
	// fresh storage lookup on every call; there is no session cache.
	Authenticate(ctx context.Context, token string) (*model.AdminUser, error)
	// Bootstrap creates the first admin. It is intentionally ungated so a
	// fresh deployment can be initialized; it refuses existing emails.
	Bootstrap(ctx context.Context, name, email, passwordHash string) error
}

type DefaultAuthService struct {
	adminRepo repository.AdminRepository
	scheme    string
	secret    []byte
}

func NewAuthService(adminRepo repository.AdminRepository, cfg config.AuthConfig) AuthService {
	return &DefaultAuthService{
		adminRepo: adminRepo,
		scheme:    cfg.TokenScheme,
		secret:    []byte(cfg.TokenSecret),
	}
}

func (s *DefaultAuthService) Login(ctx context.Context, email, passwordHash string) (*AuthResult, error) {
	admin, err := s.getAdmin(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.PasswordHash != passwordHash || !admin.Active() {
		return nil, ErrInvalidCredentials
	}

	name := admin.Name
	if name == "" {
		name = "Admin"
	}

	return &AuthResult{
		Token: s.issueToken(email),
		Name:  name,
		Role:  admin.Role,
	}, nil
}

func (s *DefaultAuthService) Authenticate(ctx context.Context, token string) (*model.AdminUser, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	email, ok := s.resolveToken(token)
	if !ok {
		return nil, ErrInvalidToken
	}

	admin, err := s.getAdmin(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidToken
	}
	if !admin.Active() {
		return nil, ErrAdminDisabled
	}

	return admin, nil
}

func (s *DefaultAuthService) Bootstrap(ctx context.Context, name, email, passwordHash string) error {
	existing, err := s.getAdmin(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAdminExists
	}

	active := true
	admin := &model.AdminUser{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleOwner,
		IsActive:     &active,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return ErrDatabaseNotConfigured
		}
		return err
	}
	return nil
}

func (s *DefaultAuthService) getAdmin(ctx context.Context, email string) (*model.AdminUser, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotConfigured) {
			return nil, ErrDatabaseNotConfigured
		}
		return nil, err
	}
	return admin, nil
}

// issueToken builds the bearer value for an email. Under the default
// "email" scheme the token is the email itself, unsigned and without
// expiry. The "hmac" scheme appends a signature so tokens cannot be
// forged from a known admin email alone.
func (s *DefaultAuthService) issueToken(email string) string {
	if s.scheme == config.TokenSchemeHMAC {
		return email + "." + s.sign(email)
	}
	return email
}

func (s *DefaultAuthService) resolveToken(token string) (string, bool) {
	if s.scheme != config.TokenSchemeHMAC {
		return token, true
	}

	i := strings.LastIndex(token, ".")
	if i < 0 {
		return "", false
	}
	email, sig := token[:i], token[i+1:]
	if !hmac.Equal([]byte(sig), []byte(s.sign(email))) {
		return "", false
	}
	return email, true
}

func (s *DefaultAuthService) sign(email string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(email))
	return hex.EncodeToString(mac.Sum(nil))
}
