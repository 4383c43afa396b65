package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/prismapp/prism-backend/internal/domain"
	"github.com/prismapp/prism-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	id, user_id, display_name, bio, age, age_range, city, height,
	body_style, purpose, orientation, personality, tags, community_ids,
	avatar_url, is_visible, last_active_at,
	show_age, show_city, show_bio, show_tags, show_height, show_body_style, show_photo,
	created_at, updated_at
`

func scanProfile(scan func(dest ...interface{}) error) (*domain.Profile, error) {
	var p domain.Profile
	err := scan(
		&p.ID, &p.UserID, &p.DisplayName, &p.Bio, &p.Age, &p.AgeRange, &p.City, &p.Height,
		&p.BodyStyle, &p.Purpose, &p.Orientation,
		pq.Array(&p.Personality), pq.Array(&p.Tags), pq.Array(&p.CommunityIDs),
		&p.AvatarURL, &p.IsVisible, &p.LastActiveAt,
		&p.ShowAge, &p.ShowCity, &p.ShowBio, &p.ShowTags, &p.ShowHeight, &p.ShowBodyStyle, &p.ShowPhoto,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, user_id, display_name, bio, age, age_range, city, height,
			body_style, purpose, orientation, personality, tags, community_ids,
			avatar_url, is_visible,
			show_age, show_city, show_bio, show_tags, show_height, show_body_style, show_photo
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.UserID, profile.DisplayName, profile.Bio, profile.Age,
		profile.AgeRange, profile.City, profile.Height, profile.BodyStyle,
		profile.Purpose, profile.Orientation,
		pq.Array(profile.Personality), pq.Array(profile.Tags), pq.Array(profile.CommunityIDs),
		profile.AvatarURL, profile.IsVisible,
		profile.ShowAge, profile.ShowCity, profile.ShowBio, profile.ShowTags,
		profile.ShowHeight, profile.ShowBodyStyle, profile.ShowPhoto,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)
	profile, err := scanProfile(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	row := r.db.QueryRowContext(ctx, query, userID)
	profile, err := scanProfile(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET display_name = $1, bio = $2, age = $3, age_range = $4, city = $5,
		    height = $6, body_style = $7, purpose = $8, orientation = $9,
		    personality = $10, tags = $11, community_ids = $12,
		    avatar_url = $13, is_visible = $14,
		    show_age = $15, show_city = $16, show_bio = $17, show_tags = $18,
		    show_height = $19, show_body_style = $20, show_photo = $21,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $22
		RETURNING updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.DisplayName, profile.Bio, profile.Age, profile.AgeRange, profile.City,
		profile.Height, profile.BodyStyle, profile.Purpose, profile.Orientation,
		pq.Array(profile.Personality), pq.Array(profile.Tags), pq.Array(profile.CommunityIDs),
		profile.AvatarURL, profile.IsVisible,
		profile.ShowAge, profile.ShowCity, profile.ShowBio, profile.ShowTags,
		profile.ShowHeight, profile.ShowBodyStyle, profile.ShowPhoto,
		profile.ID,
	).Scan(&profile.UpdatedAt)
}

func (r *profileRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM profiles WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) TouchLastActive(ctx context.Context, userID string) error {
	query := `UPDATE profiles SET last_active_at = CURRENT_TIMESTAMP WHERE user_id = $1`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}

func (r *profileRepository) ListVisible(ctx context.Context, limit, offset int) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + `
		FROM profiles
		WHERE is_visible = true
		ORDER BY last_active_at DESC NULLS LAST, created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows.Scan)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}
