package repository

import (
	"context"
	"encoding/json"
	"time"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

type projectModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Title        string    `gorm:"column:title"`
	Description  string    `gorm:"column:description"`
	Technologies string    `gorm:"column:technologies"` // JSON-encoded ordered list
	Image        string    `gorm:"column:image"`
	GithubURL    string    `gorm:"column:github_url"`
	DemoURL      string    `gorm:"column:demo_url"`
	Role         *string   `gorm:"column:role"`
	IsMini       bool      `gorm:"column:is_mini"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (projectModel) TableName() string { return "projects" }

func toDomainProject(m projectModel) *domain.Project {
	var techs []string
	if m.Technologies != "" {
		_ = json.Unmarshal([]byte(m.Technologies), &techs)
	}

	var role string
	if m.Role != nil {
		role = *m.Role
	}

	return &domain.Project{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Technologies: techs,
		Image:        m.Image,
		GithubURL:    m.GithubURL,
		DemoURL:      m.DemoURL,
		Role:         role,
		IsMini:       m.IsMini,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toProjectModel(p *domain.Project) projectModel {
	techs, _ := json.Marshal(p.Technologies)

	var role *string
	if p.Role != "" {
		v := p.Role
		role = &v
	}

	return projectModel{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Technologies: string(techs),
		Image:        p.Image,
		GithubURL:    p.GithubURL,
		DemoURL:      p.DemoURL,
		Role:         role,
		IsMini:       p.IsMini,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	m := toProjectModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProject(m)
	return nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	var models []projectModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	projects := make([]*domain.Project, 0, len(models))
	for _, m := range models {
		projects = append(projects, toDomainProject(m))
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	var m projectModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProject(m), nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	m := toProjectModel(p)
	m.UpdatedAt = time.Now()
	tx := r.db.WithContext(ctx).Model(&projectModel{}).Where("id = ?", p.ID).Updates(map[string]any{
		"title":        m.Title,
		"description":  m.Description,
		"technologies": m.Technologies,
		"image":        m.Image,
		"github_url":   m.GithubURL,
		"demo_url":     m.DemoURL,
		"role":         m.Role,
		"is_mini":      m.IsMini,
		"updated_at":   m.UpdatedAt,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	p.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&projectModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
