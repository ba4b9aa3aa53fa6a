package message

import (
	"context"
	"strings"
	"time"

	"portfolio/internal/domain"
	"portfolio/internal/pkg/validator"
	"portfolio/internal/repository"
)

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	List(ctx context.Context) ([]*domain.Message, error)
	GetByID(ctx context.Context, id int64) (*domain.Message, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// Service handles contact-form submissions: creation is public, everything
// else is for the administrator.
type Service struct {
	messages MessageRepository
}

func NewService(messages MessageRepository) *Service {
	return &Service{messages: messages}
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Message, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return nil, ErrValidation
	}

	m := &domain.Message{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	// binding already validates HTTP input; this covers direct callers
	// like the seeder.
	if fields := validator.Validate(m); len(fields) > 0 {
		return nil, ErrValidation
	}

	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Message, error) {
	return s.messages.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Message, error) {
	m, err := s.messages.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// MarkRead is idempotent: re-marking an already-read message succeeds.
func (s *Service) MarkRead(ctx context.Context, id int64) (*domain.Message, error) {
	if err := s.messages.MarkRead(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.messages.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
