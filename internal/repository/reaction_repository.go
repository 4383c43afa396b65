package repository

import "context"

// ReactionRepository stores each viewer's like/pass history. Likes keep
// a profile visible but flagged; passes exclude it from discovery.
type ReactionRepository interface {
	AddLike(ctx context.Context, viewerUserID, profileID string) error
	RemoveLike(ctx context.Context, viewerUserID, profileID string) error
	AddPass(ctx context.Context, viewerUserID, profileID string) error
	LikedIDs(ctx context.Context, viewerUserID string) (map[string]struct{}, error)
	PassedIDs(ctx context.Context, viewerUserID string) (map[string]struct{}, error)
	ClearPasses(ctx context.Context, viewerUserID string) (int, error)
}
