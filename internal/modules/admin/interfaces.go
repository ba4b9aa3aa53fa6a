package admin

import (
	"context"

	"portfolio/internal/domain"
)

type AdminRepository interface {
	Create(ctx context.Context, a *domain.Admin) error
	Count(ctx context.Context) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
	UpdateUsername(ctx context.Context, id int64, username string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type TokenIssuer interface {
	GenerateToken(adminID int64) (string, error)
}
