package repository

import (
	"context"

	"github.com/prismapp/prism-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, id string) error
	TouchLastActive(ctx context.Context, userID string) error
	// ListVisible returns visible profiles ordered by recency; the
	// discovery pipeline does all further narrowing in memory.
	ListVisible(ctx context.Context, limit, offset int) ([]*domain.Profile, error)
}
