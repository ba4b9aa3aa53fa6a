package photolog

import (
	"context"
	"strings"
	"time"

	"portfolio/internal/domain"
	"portfolio/internal/repository"

	"github.com/google/uuid"
)

// Service manages photo-log entries: idempotent initialization, atomic
// like/unlike with a zero floor, and embedded comments.
type Service struct {
	entries PhotoLogRepository
}

func NewService(entries PhotoLogRepository) *Service {
	return &Service{entries: entries}
}

type InitResult struct {
	Entry   *domain.PhotoEntry
	Created bool
}

// Init creates the entry for a photo ID unless one already exists, in which
// case the stored entry is returned unchanged. Likes start at zero.
func (s *Service) Init(ctx context.Context, req InitRequest) (*InitResult, error) {
	photoID := strings.TrimSpace(req.PhotoID)
	if photoID == "" {
		return nil, ErrValidation
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = domain.DefaultPhotoCategory
	}

	entry := &domain.PhotoEntry{
		PhotoID:  photoID,
		Title:    strings.TrimSpace(req.Title),
		URL:      strings.TrimSpace(req.URL),
		Category: category,
	}

	created, err := s.entries.CreateIfAbsent(ctx, entry)
	if err != nil {
		return nil, err
	}
	return &InitResult{Entry: entry, Created: created}, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.PhotoEntrySummary, error) {
	return s.entries.ListWithCounts(ctx)
}

// Get returns the full entry with its comments, newest first.
func (s *Service) Get(ctx context.Context, photoID string) (*domain.PhotoEntry, error) {
	entry, err := s.entries.GetByPhotoID(ctx, photoID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	comments, err := s.entries.ListComments(ctx, photoID)
	if err != nil {
		return nil, err
	}
	entry.Comments = comments
	return entry, nil
}

func (s *Service) Like(ctx context.Context, photoID string) (int64, error) {
	likes, err := s.entries.IncrementLikes(ctx, photoID)
	if err != nil {
		if repository.IsNotFound(err) {
			return 0, ErrEntryNotFound
		}
		return 0, err
	}
	return likes, nil
}

// Unlike decrements the like counter, flooring at zero: extra unlikes are
// no-ops, never an error.
func (s *Service) Unlike(ctx context.Context, photoID string) (int64, error) {
	likes, err := s.entries.DecrementLikes(ctx, photoID)
	if err != nil {
		if repository.IsNotFound(err) {
			return 0, ErrEntryNotFound
		}
		return 0, err
	}
	return likes, nil
}

func (s *Service) ResetLikes(ctx context.Context, photoID string) error {
	if err := s.entries.ResetLikes(ctx, photoID); err != nil {
		if repository.IsNotFound(err) {
			return ErrEntryNotFound
		}
		return err
	}
	return nil
}

// AddComment validates and appends a comment. Text is trimmed and must be
// 1–500 characters; a blank author becomes "Anonymous".
func (s *Service) AddComment(ctx context.Context, photoID string, req AddCommentRequest) (*domain.Comment, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" || len([]rune(text)) > domain.MaxCommentTextLen {
		return nil, ErrValidation
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = domain.DefaultCommentAuthor
	}
	if len([]rune(author)) > domain.MaxCommentAuthorLen {
		return nil, ErrValidation
	}

	if _, err := s.entries.GetByPhotoID(ctx, photoID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	cm := &domain.Comment{
		ID:        uuid.NewString(),
		PhotoID:   photoID,
		Text:      text,
		Author:    author,
		CreatedAt: time.Now(),
	}
	if err := s.entries.AddComment(ctx, cm); err != nil {
		return nil, err
	}
	return cm, nil
}

func (s *Service) ListComments(ctx context.Context, photoID string) ([]domain.Comment, error) {
	if _, err := s.entries.GetByPhotoID(ctx, photoID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return s.entries.ListComments(ctx, photoID)
}

func (s *Service) DeleteComment(ctx context.Context, photoID, commentID string) error {
	if _, err := s.entries.GetByPhotoID(ctx, photoID); err != nil {
		if repository.IsNotFound(err) {
			return ErrEntryNotFound
		}
		return err
	}

	if err := s.entries.DeleteComment(ctx, photoID, commentID); err != nil {
		if repository.IsNotFound(err) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ClearComments(ctx context.Context, photoID string) error {
	if _, err := s.entries.GetByPhotoID(ctx, photoID); err != nil {
		if repository.IsNotFound(err) {
			return ErrEntryNotFound
		}
		return err
	}
	return s.entries.ClearComments(ctx, photoID)
}

func (s *Service) Update(ctx context.Context, photoID string, req UpdateRequest) (*domain.PhotoEntry, error) {
	entry, err := s.entries.GetByPhotoID(ctx, photoID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		entry.Title = strings.TrimSpace(*req.Title)
	}
	if req.URL != nil {
		entry.URL = strings.TrimSpace(*req.URL)
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			category = domain.DefaultPhotoCategory
		}
		entry.Category = category
	}

	if err := s.entries.UpdateEntry(ctx, entry); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return s.Get(ctx, photoID)
}

func (s *Service) Delete(ctx context.Context, photoID string) error {
	if err := s.entries.DeleteEntry(ctx, photoID); err != nil {
		if repository.IsNotFound(err) {
			return ErrEntryNotFound
		}
		return err
	}
	return nil
}
