package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/prismapp/prism-backend/internal/domain"
	"github.com/prismapp/prism-backend/internal/repository"
)

type conversationRepository struct {
	db *sqlx.DB
}

func NewConversationRepository(db *sqlx.DB) repository.ConversationRepository {
	return &conversationRepository{db: db}
}

// orderPair keeps user1_id < user2_id so the pair constraint holds.
func orderPair(user1ID, user2ID string) (string, string) {
	if user1ID > user2ID {
		return user2ID, user1ID
	}
	return user1ID, user2ID
}

func (r *conversationRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	user1ID, user2ID := orderPair(conv.User1ID, conv.User2ID)

	query := `
		INSERT INTO conversations (id, user1_id, user2_id, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, conv.ID, user1ID, user2ID, conv.IsActive).
		Scan(&conv.CreatedAt)

	conv.User1ID = user1ID
	conv.User2ID = user2ID
	return err
}

func (r *conversationRepository) GetByID(ctx context.Context, id string) (*domain.Conversation, error) {
	var conv domain.Conversation
	query := `SELECT * FROM conversations WHERE id = $1`
	err := r.db.GetContext(ctx, &conv, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) GetByUsers(ctx context.Context, user1ID, user2ID string) (*domain.Conversation, error) {
	user1ID, user2ID = orderPair(user1ID, user2ID)

	var conv domain.Conversation
	query := `SELECT * FROM conversations WHERE user1_id = $1 AND user2_id = $2`
	err := r.db.GetContext(ctx, &conv, query, user1ID, user2ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}
	return &conv, nil
}

func (r *conversationRepository) GetUserConversations(ctx context.Context, userID string, limit, offset int) ([]*domain.Conversation, error) {
	var convs []*domain.Conversation
	query := `
		SELECT * FROM conversations
		WHERE (user1_id = $1 OR user2_id = $1) AND is_active = true
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &convs, query, userID, limit, offset)
	return convs, err
}

func (r *conversationRepository) UpdateStatus(ctx context.Context, id string, isActive bool) error {
	query := `UPDATE conversations SET is_active = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, isActive, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}

func (r *conversationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM conversations WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}
