package repository

import (
	"context"
	"time"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

type uploadModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	OriginalName string    `gorm:"column:original_name"`
	FilePath     string    `gorm:"column:file_path"`
	FileURL      string    `gorm:"column:file_url;index"`
	MimeType     string    `gorm:"column:mime_type"`
	Size         int64     `gorm:"column:size"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (uploadModel) TableName() string { return "uploads" }

func toDomainUpload(m uploadModel) *domain.Upload {
	return &domain.Upload{
		ID:           m.ID,
		OriginalName: m.OriginalName,
		FilePath:     m.FilePath,
		FileURL:      m.FileURL,
		MimeType:     m.MimeType,
		Size:         m.Size,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *UploadRepository) Create(ctx context.Context, u *domain.Upload) error {
	m := uploadModel{
		ID:           u.ID,
		OriginalName: u.OriginalName,
		FilePath:     u.FilePath,
		FileURL:      u.FileURL,
		MimeType:     u.MimeType,
		Size:         u.Size,
		CreatedAt:    u.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *UploadRepository) GetByURL(ctx context.Context, fileURL string) (*domain.Upload, error) {
	var m uploadModel
	tx := r.db.WithContext(ctx).Where("file_url = ?", fileURL).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUpload(m), nil
}

func (r *UploadRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&uploadModel{}, "id = ?", id).Error
}
