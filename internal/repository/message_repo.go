package repository

import (
	"context"
	"strings"
	"time"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

type messageModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Subject   string    `gorm:"column:subject"`
	Message   string    `gorm:"column:message"`
	IsRead    bool      `gorm:"column:is_read"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (messageModel) TableName() string { return "messages" }

func toDomainMessage(m messageModel) *domain.Message {
	return &domain.Message{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	m := messageModel{
		Name:      strings.TrimSpace(msg.Name),
		Email:     strings.TrimSpace(strings.ToLower(msg.Email)),
		Subject:   strings.TrimSpace(msg.Subject),
		Message:   msg.Message,
		IsRead:    false,
		CreatedAt: msg.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*msg = *toDomainMessage(m)
	return nil
}

func (r *MessageRepository) List(ctx context.Context) ([]*domain.Message, error) {
	var models []messageModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	messages := make([]*domain.Message, 0, len(models))
	for _, m := range models {
		messages = append(messages, toDomainMessage(m))
	}
	return messages, nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	var m messageModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainMessage(m), nil
}

// MarkRead is idempotent: marking an already-read message succeeds.
func (r *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	var m messageModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return err
	}
	if m.IsRead {
		return nil
	}
	return r.db.WithContext(ctx).Model(&messageModel{}).Where("id = ?", id).
		UpdateColumn("is_read", true).Error
}

func (r *MessageRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&messageModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
