package project

import (
	"context"

	"portfolio/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	List(ctx context.Context) ([]*domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
}

// MediaCleaner removes a previously stored asset. Cleanup is best-effort:
// implementations never return an error to the caller.
type MediaCleaner interface {
	Remove(ctx context.Context, fileURL string)
}
