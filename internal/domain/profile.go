package domain

import "time"

// FieldVisibility controls which profile fields other users can see.
// Each flag is independent; hidden fields are nulled out before a
// profile is returned to anyone but its owner.
type FieldVisibility struct {
	ShowAge       bool `json:"show_age" db:"show_age"`
	ShowCity      bool `json:"show_city" db:"show_city"`
	ShowBio       bool `json:"show_bio" db:"show_bio"`
	ShowTags      bool `json:"show_tags" db:"show_tags"`
	ShowHeight    bool `json:"show_height" db:"show_height"`
	ShowBodyStyle bool `json:"show_body_style" db:"show_body_style"`
	ShowPhoto     bool `json:"show_photo" db:"show_photo"`
}

type Profile struct {
	ID           string     `json:"id" db:"id"`
	UserID       string     `json:"user_id" db:"user_id"`
	DisplayName  string     `json:"display_name" db:"display_name"`
	Bio          *string    `json:"bio" db:"bio"`
	Age          *int       `json:"age" db:"age"`
	AgeRange     *string    `json:"age_range" db:"age_range"`
	City         *string    `json:"city" db:"city"`
	Height       *int       `json:"height" db:"height"`
	BodyStyle    *string    `json:"body_style" db:"body_style"`
	Purpose      *string    `json:"purpose" db:"purpose"`
	Orientation  *string    `json:"orientation" db:"orientation"`
	Personality  []string   `json:"personality" db:"personality"`
	Tags         []string   `json:"tags" db:"tags"`
	CommunityIDs []string   `json:"community_ids" db:"community_ids"`
	AvatarURL    *string    `json:"avatar_url" db:"avatar_url"`
	IsVisible    bool       `json:"is_visible" db:"is_visible"`
	LastActiveAt *time.Time `json:"last_active_at" db:"last_active_at"`
	FieldVisibility
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// OrientationLabel returns the raw self-reported orientation string,
// empty when the field was never set.
func (p *Profile) OrientationLabel() string {
	if p.Orientation == nil {
		return ""
	}
	return *p.Orientation
}

// Masked returns a copy with every field the owner chose to hide
// nulled out. The owner always sees the full record.
func (p *Profile) Masked() *Profile {
	masked := *p
	if !p.ShowAge {
		masked.Age = nil
		masked.AgeRange = nil
	}
	if !p.ShowCity {
		masked.City = nil
	}
	if !p.ShowBio {
		masked.Bio = nil
	}
	if !p.ShowTags {
		masked.Tags = nil
	}
	if !p.ShowHeight {
		masked.Height = nil
	}
	if !p.ShowBodyStyle {
		masked.BodyStyle = nil
	}
	if !p.ShowPhoto {
		masked.AvatarURL = nil
	}
	return &masked
}

// MatchFilters is a viewer-specified discovery query. MaxDistanceKm is
// advisory only and never enforced by the pipeline.
type MatchFilters struct {
	AgeMin        int      `json:"age_min"`
	AgeMax        int      `json:"age_max"`
	MaxDistanceKm int      `json:"max_distance_km"`
	Purposes      []string `json:"purposes"`
	AgeRanges     []string `json:"age_ranges"`
	Regions       []string `json:"regions"`
	Orientations  []string `json:"orientations"`
	LikedOnly     bool     `json:"liked_only"`
}

// DefaultMatchFilters returns the unconstrained query every viewer
// starts with.
func DefaultMatchFilters() MatchFilters {
	return MatchFilters{
		AgeMin:        18,
		AgeMax:        99,
		MaxDistanceKm: 100,
	}
}
