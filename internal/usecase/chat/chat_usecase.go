package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/prismapp/prism-backend/internal/domain"
	"github.com/prismapp/prism-backend/internal/repository"
)

type ChatUseCase struct {
	conversationRepo repository.ConversationRepository
	profileRepo      repository.ProfileRepository
}

func NewChatUseCase(
	conversationRepo repository.ConversationRepository,
	profileRepo repository.ProfileRepository,
) *ChatUseCase {
	return &ChatUseCase{
		conversationRepo: conversationRepo,
		profileRepo:      profileRepo,
	}
}

// OpenChatRequest represents a chat-open attempt
type OpenChatRequest struct {
	TargetUserID string `json:"target_user_id" binding:"required,uuid"`
}

// OpenChatResponse represents the chat-open result
type OpenChatResponse struct {
	Eligibility  Eligibility          `json:"eligibility"`
	Conversation *domain.Conversation `json:"conversation,omitempty"`
}

// OpenChat checks eligibility between the two users' profiles and, if
// allowed, returns the existing conversation for the pair or creates
// one. Denial is a normal result, not an error.
func (uc *ChatUseCase) OpenChat(ctx context.Context, viewerUserID string, req *OpenChatRequest) (*OpenChatResponse, error) {
	if viewerUserID == req.TargetUserID {
		return nil, domain.ErrCannotChatSelf
	}

	viewerProfile, err := uc.profileRepo.GetByUserID(ctx, viewerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get viewer profile: %w", err)
	}

	targetProfile, err := uc.profileRepo.GetByUserID(ctx, req.TargetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get target profile: %w", err)
	}

	eligibility := CheckEligibility(viewerProfile.OrientationLabel(), targetProfile.OrientationLabel())
	if !eligibility.Allowed {
		return &OpenChatResponse{Eligibility: eligibility}, nil
	}

	existing, err := uc.conversationRepo.GetByUsers(ctx, viewerUserID, req.TargetUserID)
	if err == nil {
		return &OpenChatResponse{Eligibility: eligibility, Conversation: existing}, nil
	}
	if !errors.Is(err, domain.ErrConversationNotFound) {
		return nil, fmt.Errorf("failed to look up conversation: %w", err)
	}

	conv := &domain.Conversation{
		ID:       uuid.New().String(),
		User1ID:  viewerUserID,
		User2ID:  req.TargetUserID,
		IsActive: true,
	}
	if err := uc.conversationRepo.Create(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	return &OpenChatResponse{Eligibility: eligibility, Conversation: conv}, nil
}

// ListConversations returns the viewer's active conversations.
func (uc *ChatUseCase) ListConversations(ctx context.Context, viewerUserID string, limit, offset int) ([]*domain.Conversation, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	convs, err := uc.conversationRepo.GetUserConversations(ctx, viewerUserID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return convs, nil
}
