package reaction

import (
	"context"
	"fmt"

	"github.com/prismapp/prism-backend/internal/domain"
	"github.com/prismapp/prism-backend/internal/repository"
)

type ReactionUseCase struct {
	reactionRepo repository.ReactionRepository
	profileRepo  repository.ProfileRepository
}

func NewReactionUseCase(
	reactionRepo repository.ReactionRepository,
	profileRepo repository.ProfileRepository,
) *ReactionUseCase {
	return &ReactionUseCase{
		reactionRepo: reactionRepo,
		profileRepo:  profileRepo,
	}
}

// ReactionRequest represents a like or pass action
type ReactionRequest struct {
	ProfileID string `json:"profile_id" binding:"required,uuid"`
}

// Like records a like. Liked profiles stay visible in discovery,
// flagged as liked.
func (uc *ReactionUseCase) Like(ctx context.Context, viewerUserID, profileID string) error {
	if err := uc.validateTarget(ctx, viewerUserID, profileID); err != nil {
		return err
	}
	if err := uc.reactionRepo.AddLike(ctx, viewerUserID, profileID); err != nil {
		return fmt.Errorf("failed to store like: %w", err)
	}
	return nil
}

// Unlike removes a like. Removing a like that was never recorded is a
// no-op.
func (uc *ReactionUseCase) Unlike(ctx context.Context, viewerUserID, profileID string) error {
	if err := uc.reactionRepo.RemoveLike(ctx, viewerUserID, profileID); err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

// Pass records a pass. Passed profiles are excluded from the viewer's
// discovery list until passes are reset.
func (uc *ReactionUseCase) Pass(ctx context.Context, viewerUserID, profileID string) error {
	if err := uc.validateTarget(ctx, viewerUserID, profileID); err != nil {
		return err
	}
	if err := uc.reactionRepo.AddPass(ctx, viewerUserID, profileID); err != nil {
		return fmt.Errorf("failed to store pass: %w", err)
	}
	return nil
}

// LikedIDs returns the ids of every profile the viewer has liked.
func (uc *ReactionUseCase) LikedIDs(ctx context.Context, viewerUserID string) ([]string, error) {
	liked, err := uc.reactionRepo.LikedIDs(ctx, viewerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load liked ids: %w", err)
	}
	ids := make([]string, 0, len(liked))
	for id := range liked {
		ids = append(ids, id)
	}
	return ids, nil
}

// ResetPasses clears the viewer's pass history and returns how many
// entries were dropped.
func (uc *ReactionUseCase) ResetPasses(ctx context.Context, viewerUserID string) (int, error) {
	count, err := uc.reactionRepo.ClearPasses(ctx, viewerUserID)
	if err != nil {
		return 0, fmt.Errorf("failed to reset passes: %w", err)
	}
	return count, nil
}

func (uc *ReactionUseCase) validateTarget(ctx context.Context, viewerUserID, profileID string) error {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}
	if profile.UserID == viewerUserID {
		return domain.ErrCannotReactSelf
	}
	return nil
}
