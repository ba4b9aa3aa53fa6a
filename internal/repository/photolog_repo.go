package repository

import (
	"context"
	"time"

	"portfolio/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PhotoLogRepository struct {
	db *gorm.DB
}

func NewPhotoLogRepository(db *gorm.DB) *PhotoLogRepository {
	return &PhotoLogRepository{db: db}
}

type photoEntryModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	PhotoID   string    `gorm:"column:photo_id;uniqueIndex"`
	Title     string    `gorm:"column:title"`
	URL       string    `gorm:"column:url"`
	Category  string    `gorm:"column:category"`
	Likes     int64     `gorm:"column:likes"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (photoEntryModel) TableName() string { return "photo_entries" }

type photoCommentModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	PhotoID   string    `gorm:"column:photo_id;index"`
	Text      string    `gorm:"column:text"`
	Author    string    `gorm:"column:author"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (photoCommentModel) TableName() string { return "photo_comments" }

func toDomainEntry(m photoEntryModel) *domain.PhotoEntry {
	return &domain.PhotoEntry{
		ID:        m.ID,
		PhotoID:   m.PhotoID,
		Title:     m.Title,
		URL:       m.URL,
		Category:  m.Category,
		Likes:     m.Likes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainComment(m photoCommentModel) domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		PhotoID:   m.PhotoID,
		Text:      m.Text,
		Author:    m.Author,
		CreatedAt: m.CreatedAt,
	}
}

// CreateIfAbsent inserts the entry unless its photo ID is already taken, in
// which case the stored entry is returned untouched. The ON CONFLICT clause
// keeps concurrent inits for the same photo ID race-free.
func (r *PhotoLogRepository) CreateIfAbsent(ctx context.Context, e *domain.PhotoEntry) (created bool, err error) {
	m := photoEntryModel{
		PhotoID:   e.PhotoID,
		Title:     e.Title,
		URL:       e.URL,
		Category:  e.Category,
		Likes:     0,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "photo_id"}},
		DoNothing: true,
	}).Create(&m)
	if tx.Error != nil {
		return false, tx.Error
	}
	created = tx.RowsAffected > 0

	var stored photoEntryModel
	if err := r.db.WithContext(ctx).Where("photo_id = ?", e.PhotoID).First(&stored).Error; err != nil {
		return false, err
	}
	*e = *toDomainEntry(stored)
	return created, nil
}

// ListWithCounts returns all entries newest-first, each carrying its comment
// count instead of the comment bodies.
func (r *PhotoLogRepository) ListWithCounts(ctx context.Context) ([]*domain.PhotoEntrySummary, error) {
	var models []photoEntryModel
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	type countRow struct {
		PhotoID string `gorm:"column:photo_id"`
		N       int64  `gorm:"column:n"`
	}
	var counts []countRow
	if err := r.db.WithContext(ctx).Model(&photoCommentModel{}).
		Select("photo_id, COUNT(*) AS n").
		Group("photo_id").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	byPhoto := make(map[string]int64, len(counts))
	for _, c := range counts {
		byPhoto[c.PhotoID] = c.N
	}

	summaries := make([]*domain.PhotoEntrySummary, 0, len(models))
	for _, m := range models {
		summaries = append(summaries, &domain.PhotoEntrySummary{
			PhotoID:      m.PhotoID,
			Title:        m.Title,
			URL:          m.URL,
			Category:     m.Category,
			Likes:        m.Likes,
			CommentCount: byPhoto[m.PhotoID],
			CreatedAt:    m.CreatedAt,
			UpdatedAt:    m.UpdatedAt,
		})
	}
	return summaries, nil
}

func (r *PhotoLogRepository) GetByPhotoID(ctx context.Context, photoID string) (*domain.PhotoEntry, error) {
	var m photoEntryModel
	tx := r.db.WithContext(ctx).Where("photo_id = ?", photoID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEntry(m), nil
}

// IncrementLikes applies likes = likes + 1 as a single statement so that
// concurrent likes for the same photo never lose updates.
func (r *PhotoLogRepository) IncrementLikes(ctx context.Context, photoID string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&photoEntryModel{}).
		Where("photo_id = ?", photoID).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return r.currentLikes(ctx, photoID)
}

// DecrementLikes floors at zero: the WHERE clause skips the update when likes
// is already 0, which also makes the decrement atomic.
func (r *PhotoLogRepository) DecrementLikes(ctx context.Context, photoID string) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&photoEntryModel{}).
		Where("photo_id = ? AND likes > 0", photoID).
		UpdateColumn("likes", gorm.Expr("likes - 1"))
	if tx.Error != nil {
		return 0, tx.Error
	}
	// RowsAffected == 0 is either a missing entry or the floor; the read
	// back distinguishes the two.
	return r.currentLikes(ctx, photoID)
}

func (r *PhotoLogRepository) ResetLikes(ctx context.Context, photoID string) error {
	tx := r.db.WithContext(ctx).Model(&photoEntryModel{}).
		Where("photo_id = ?", photoID).
		UpdateColumn("likes", 0)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PhotoLogRepository) currentLikes(ctx context.Context, photoID string) (int64, error) {
	var m photoEntryModel
	if err := r.db.WithContext(ctx).Select("likes").Where("photo_id = ?", photoID).First(&m).Error; err != nil {
		return 0, err
	}
	return m.Likes, nil
}

func (r *PhotoLogRepository) UpdateEntry(ctx context.Context, e *domain.PhotoEntry) error {
	tx := r.db.WithContext(ctx).Model(&photoEntryModel{}).
		Where("photo_id = ?", e.PhotoID).
		Updates(map[string]any{
			"title":      e.Title,
			"url":        e.URL,
			"category":   e.Category,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteEntry removes the entry together with its comments.
func (r *PhotoLogRepository) DeleteEntry(ctx context.Context, photoID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("photo_id = ?", photoID).Delete(&photoEntryModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("photo_id = ?", photoID).Delete(&photoCommentModel{}).Error
	})
}

func (r *PhotoLogRepository) AddComment(ctx context.Context, cm *domain.Comment) error {
	m := photoCommentModel{
		ID:        cm.ID,
		PhotoID:   cm.PhotoID,
		Text:      cm.Text,
		Author:    cm.Author,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*cm = toDomainComment(m)
	return nil
}

func (r *PhotoLogRepository) ListComments(ctx context.Context, photoID string) ([]domain.Comment, error) {
	var models []photoCommentModel
	tx := r.db.WithContext(ctx).
		Where("photo_id = ?", photoID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	comments := make([]domain.Comment, 0, len(models))
	for _, m := range models {
		comments = append(comments, toDomainComment(m))
	}
	return comments, nil
}

func (r *PhotoLogRepository) DeleteComment(ctx context.Context, photoID, commentID string) error {
	tx := r.db.WithContext(ctx).
		Where("photo_id = ? AND id = ?", photoID, commentID).
		Delete(&photoCommentModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PhotoLogRepository) ClearComments(ctx context.Context, photoID string) error {
	return r.db.WithContext(ctx).
		Where("photo_id = ?", photoID).
		Delete(&photoCommentModel{}).Error
}
