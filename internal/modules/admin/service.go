package admin

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"portfolio/internal/domain"
	"portfolio/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Service owns the administrator credential lifecycle: one-time setup, login,
// profile reads and credential updates. Tokens are stateless, so credential
// changes never invalidate tokens issued earlier.
type Service struct {
	admins   AdminRepository
	jwt      TokenIssuer
	setupKey string
}

func NewService(admins AdminRepository, jwt TokenIssuer, setupKey string) *Service {
	return &Service{
		admins:   admins,
		jwt:      jwt,
		setupKey: setupKey,
	}
}

type LoginResult struct {
	Admin AdminResponse
	Token string
}

// Setup provisions the single administrator account. It refuses to run with a
// wrong setup key, and refuses to run twice.
func (s *Service) Setup(ctx context.Context, req SetupRequest) (*AdminResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.SetupKey), []byte(s.setupKey)) != 1 {
		return nil, ErrInvalidSetupKey
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || strings.TrimSpace(req.Password) == "" {
		return nil, ErrValidation
	}

	n, err := s.admins.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrAdminExists
		}
		return nil, err
	}

	resp := toAdminResponse(admin)
	return &resp, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	admin, err := s.admins.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(admin.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Admin: toAdminResponse(admin), Token: token}, nil
}

func (s *Service) Profile(ctx context.Context, id int64) (*AdminResponse, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := toAdminResponse(admin)
	return &resp, nil
}

func (s *Service) UpdateUsername(ctx context.Context, id int64, req UpdateUsernameRequest) (*AdminResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, ErrValidation
	}

	if existing, err := s.admins.GetByUsername(ctx, username); err == nil && existing.ID != id {
		return nil, ErrUsernameTaken
	}

	if err := s.admins.UpdateUsername(ctx, id, username); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrUsernameTaken
		}
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.Profile(ctx, id)
}

// UpdatePassword replaces the stored hash only after the current password
// verifies; a mismatch leaves it untouched.
func (s *Service) UpdatePassword(ctx context.Context, id int64, req UpdatePasswordRequest) error {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.admins.UpdatePassword(ctx, id, string(hash))
}
