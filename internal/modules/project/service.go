package project

import (
	"context"
	"strings"
	"time"

	"portfolio/internal/domain"
	"portfolio/internal/repository"
)

type Service struct {
	projects ProjectRepository
	media    MediaCleaner
}

func NewService(projects ProjectRepository, media MediaCleaner) *Service {
	return &Service{projects: projects, media: media}
}

func (s *Service) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Project, error) {
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		len(in.Technologies) == 0 ||
		strings.TrimSpace(in.GithubURL) == "" ||
		strings.TrimSpace(in.DemoURL) == "" ||
		strings.TrimSpace(in.Image) == "" {
		return nil, ErrValidation
	}

	p := &domain.Project{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Technologies: in.Technologies,
		Image:        in.Image,
		GithubURL:    strings.TrimSpace(in.GithubURL),
		DemoURL:      strings.TrimSpace(in.DemoURL),
		Role:         strings.TrimSpace(in.Role),
		IsMini:       in.IsMini,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies a partial update. When the image changes, the previous asset
// is cleaned up best-effort after the row is saved.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.Project, error) {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	oldImage := p.Image

	if in.Title != nil {
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.Technologies != nil {
		p.Technologies = in.Technologies
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.GithubURL != nil {
		p.GithubURL = strings.TrimSpace(*in.GithubURL)
	}
	if in.DemoURL != nil {
		p.DemoURL = strings.TrimSpace(*in.DemoURL)
	}
	if in.Role != nil {
		p.Role = strings.TrimSpace(*in.Role)
	}
	if in.IsMini != nil {
		p.IsMini = *in.IsMini
	}

	if p.Title == "" || p.Description == "" || len(p.Technologies) == 0 {
		return nil, ErrValidation
	}

	if err := s.projects.Update(ctx, p); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Image != nil && oldImage != "" && oldImage != p.Image && s.media != nil {
		s.media.Remove(ctx, oldImage)
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound
		}
		return err
	}

	if p.Image != "" && s.media != nil {
		s.media.Remove(ctx, p.Image)
	}
	return nil
}
