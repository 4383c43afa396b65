package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prismapp/prism-backend/internal/domain"
	"github.com/prismapp/prism-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// CreateProfileRequest represents profile creation request
type CreateProfileRequest struct {
	DisplayName string   `json:"display_name" binding:"required,min=1,max=100"`
	Bio         *string  `json:"bio" binding:"omitempty,max=1000"`
	Age         *int     `json:"age" binding:"omitempty,min=18,max=120"`
	AgeRange    *string  `json:"age_range" binding:"omitempty,max=20"`
	City        *string  `json:"city" binding:"omitempty,max=100"`
	Height      *int     `json:"height" binding:"omitempty,min=100,max=250"`
	BodyStyle   *string  `json:"body_style" binding:"omitempty,max=50"`
	Purpose     *string  `json:"purpose" binding:"omitempty,max=50"`
	Orientation *string  `json:"orientation" binding:"omitempty,max=50"`
	Personality []string `json:"personality" binding:"omitempty,max=10"`
	Tags        []string `json:"tags" binding:"omitempty,max=20"`
	AvatarURL   *string  `json:"avatar_url" binding:"omitempty,url"`
}

// UpdateProfileRequest represents profile update request; nil fields
// are left unchanged.
type UpdateProfileRequest struct {
	DisplayName *string                 `json:"display_name" binding:"omitempty,min=1,max=100"`
	Bio         *string                 `json:"bio" binding:"omitempty,max=1000"`
	Age         *int                    `json:"age" binding:"omitempty,min=18,max=120"`
	AgeRange    *string                 `json:"age_range" binding:"omitempty,max=20"`
	City        *string                 `json:"city" binding:"omitempty,max=100"`
	Height      *int                    `json:"height" binding:"omitempty,min=100,max=250"`
	BodyStyle   *string                 `json:"body_style" binding:"omitempty,max=50"`
	Purpose     *string                 `json:"purpose" binding:"omitempty,max=50"`
	Orientation *string                 `json:"orientation" binding:"omitempty,max=50"`
	Personality *[]string               `json:"personality" binding:"omitempty,max=10"`
	Tags        *[]string               `json:"tags" binding:"omitempty,max=20"`
	AvatarURL   *string                 `json:"avatar_url" binding:"omitempty,url"`
	IsVisible   *bool                   `json:"is_visible"`
	Visibility  *domain.FieldVisibility `json:"visibility"`
}

// GetMyProfile returns current user's profile, unmasked.
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

// GetProfileByUserID returns another user's profile with hidden fields
// masked. Hidden (non-visible) profiles are only shown to their owner.
func (uc *ProfileUseCase) GetProfileByUserID(ctx context.Context, targetUserID, viewerUserID string) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if targetUserID == viewerUserID {
		return profile, nil
	}
	if !profile.IsVisible {
		return nil, domain.ErrProfileHidden
	}
	return profile.Masked(), nil
}

// CreateProfile creates a profile for a user that has none yet. New
// profiles start visible with every field shown.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, userID string, req *CreateProfileRequest) (*domain.Profile, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	existing, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err == nil && existing != nil {
		return nil, domain.ErrProfileAlreadyExists
	}

	profile := &domain.Profile{
		ID:          uuid.New().String(),
		UserID:      userID,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Age:         req.Age,
		AgeRange:    req.AgeRange,
		City:        req.City,
		Height:      req.Height,
		BodyStyle:   req.BodyStyle,
		Purpose:     req.Purpose,
		Orientation: req.Orientation,
		Personality: req.Personality,
		Tags:        req.Tags,
		AvatarURL:   req.AvatarURL,
		IsVisible:   true,
		FieldVisibility: domain.FieldVisibility{
			ShowAge:       true,
			ShowCity:      true,
			ShowBio:       true,
			ShowTags:      true,
			ShowHeight:    true,
			ShowBodyStyle: true,
			ShowPhoto:     true,
		},
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile updates the owner's profile fields and privacy map.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Age != nil {
		profile.Age = req.Age
	}
	if req.AgeRange != nil {
		profile.AgeRange = req.AgeRange
	}
	if req.City != nil {
		profile.City = req.City
	}
	if req.Height != nil {
		profile.Height = req.Height
	}
	if req.BodyStyle != nil {
		profile.BodyStyle = req.BodyStyle
	}
	if req.Purpose != nil {
		profile.Purpose = req.Purpose
	}
	if req.Orientation != nil {
		profile.Orientation = req.Orientation
	}
	if req.Personality != nil {
		profile.Personality = *req.Personality
	}
	if req.Tags != nil {
		profile.Tags = *req.Tags
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	if req.IsVisible != nil {
		profile.IsVisible = *req.IsVisible
	}
	if req.Visibility != nil {
		profile.FieldVisibility = *req.Visibility
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// TouchLastActive bumps the profile's last-active timestamp. Failures
// are not fatal to the caller's request.
func (uc *ProfileUseCase) TouchLastActive(ctx context.Context, userID string) error {
	return uc.profileRepo.TouchLastActive(ctx, userID)
}
