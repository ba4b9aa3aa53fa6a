package photolog

import (
	"context"

	"portfolio/internal/domain"
)

type PhotoLogRepository interface {
	CreateIfAbsent(ctx context.Context, e *domain.PhotoEntry) (created bool, err error)
	ListWithCounts(ctx context.Context) ([]*domain.PhotoEntrySummary, error)
	GetByPhotoID(ctx context.Context, photoID string) (*domain.PhotoEntry, error)
	IncrementLikes(ctx context.Context, photoID string) (int64, error)
	DecrementLikes(ctx context.Context, photoID string) (int64, error)
	ResetLikes(ctx context.Context, photoID string) error
	UpdateEntry(ctx context.Context, e *domain.PhotoEntry) error
	DeleteEntry(ctx context.Context, photoID string) error
	AddComment(ctx context.Context, cm *domain.Comment) error
	ListComments(ctx context.Context, photoID string) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, photoID, commentID string) error
	ClearComments(ctx context.Context, photoID string) error
}
