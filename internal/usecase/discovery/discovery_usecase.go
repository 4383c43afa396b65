package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/prismapp/prism-backend/internal/domain"
	"github.com/prismapp/prism-backend/internal/repository"
)

// candidatePageSize bounds how many visible profiles one pipeline run
// considers. Realistic lists are tens to low hundreds of profiles.
const candidatePageSize = 200

type DiscoveryUseCase struct {
	profileRepo  repository.ProfileRepository
	reactionRepo repository.ReactionRepository
}

func NewDiscoveryUseCase(
	profileRepo repository.ProfileRepository,
	reactionRepo repository.ReactionRepository,
) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		profileRepo:  profileRepo,
		reactionRepo: reactionRepo,
	}
}

// DiscoveredProfile is a browse-list entry: the privacy-masked profile
// plus the viewer's like flag.
type DiscoveredProfile struct {
	*domain.Profile
	IsLiked bool `json:"is_liked"`
}

// DiscoverResponse carries the active tab's list and the per-tab badge
// counts.
type DiscoverResponse struct {
	Counts   BucketCounts         `json:"counts"`
	Bucket   domain.Bucket        `json:"bucket"`
	Profiles []*DiscoveredProfile `json:"profiles"`
}

// Discover runs the filter pipeline over the current snapshot of
// visible profiles and the viewer's like/pass history. When includeSelf
// is set the viewer's own profile is injected at the front of the list
// (the just-saved-profile preview).
func (uc *DiscoveryUseCase) Discover(
	ctx context.Context,
	viewerUserID string,
	filters domain.MatchFilters,
	bucket domain.Bucket,
	includeSelf bool,
) (*DiscoverResponse, error) {
	candidates, err := uc.profileRepo.ListVisible(ctx, candidatePageSize, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate profiles: %w", err)
	}

	liked, err := uc.reactionRepo.LikedIDs(ctx, viewerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load liked ids: %w", err)
	}

	passed, err := uc.reactionRepo.PassedIDs(ctx, viewerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load passed ids: %w", err)
	}

	var injectedSelf *domain.Profile
	if includeSelf {
		self, err := uc.profileRepo.GetByUserID(ctx, viewerUserID)
		if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
			return nil, fmt.Errorf("failed to load own profile: %w", err)
		}
		injectedSelf = self
	}

	result := FilterAndCategorize(candidates, viewerUserID, liked, passed, filters, injectedSelf)

	displayed := SelectBucket(result.Survivors, bucket)
	profiles := make([]*DiscoveredProfile, 0, len(displayed))
	for _, p := range displayed {
		_, isLiked := liked[p.ID]
		shown := p
		if p.UserID != viewerUserID {
			shown = p.Masked()
		}
		profiles = append(profiles, &DiscoveredProfile{
			Profile: shown,
			IsLiked: isLiked,
		})
	}

	return &DiscoverResponse{
		Counts:   result.Counts,
		Bucket:   bucket,
		Profiles: profiles,
	}, nil
}
