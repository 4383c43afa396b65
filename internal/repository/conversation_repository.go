package repository

import (
	"context"

	"github.com/prismapp/prism-backend/internal/domain"
)

type ConversationRepository interface {
	Create(ctx context.Context, conv *domain.Conversation) error
	GetByID(ctx context.Context, id string) (*domain.Conversation, error)
	GetByUsers(ctx context.Context, user1ID, user2ID string) (*domain.Conversation, error)
	GetUserConversations(ctx context.Context, userID string, limit, offset int) ([]*domain.Conversation, error)
	UpdateStatus(ctx context.Context, id string, isActive bool) error
	Delete(ctx context.Context, id string) error
}
