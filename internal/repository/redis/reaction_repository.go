package redis

import (
	"context"
	"fmt"

	"github.com/prismapp/prism-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

// reactionRepository keeps each viewer's like/pass history as two Redis
// sets. The discovery pipeline only ever needs the full snapshot, so
// SMEMBERS is enough; sets stay small (tens to low hundreds of ids).
type reactionRepository struct {
	client *redis.Client
}

func NewReactionRepository(client *redis.Client) repository.ReactionRepository {
	return &reactionRepository{client: client}
}

func likedKey(viewerUserID string) string {
	return fmt.Sprintf("reactions:%s:liked", viewerUserID)
}

func passedKey(viewerUserID string) string {
	return fmt.Sprintf("reactions:%s:passed", viewerUserID)
}

func (r *reactionRepository) AddLike(ctx context.Context, viewerUserID, profileID string) error {
	return r.client.SAdd(ctx, likedKey(viewerUserID), profileID).Err()
}

func (r *reactionRepository) RemoveLike(ctx context.Context, viewerUserID, profileID string) error {
	return r.client.SRem(ctx, likedKey(viewerUserID), profileID).Err()
}

func (r *reactionRepository) AddPass(ctx context.Context, viewerUserID, profileID string) error {
	return r.client.SAdd(ctx, passedKey(viewerUserID), profileID).Err()
}

func (r *reactionRepository) LikedIDs(ctx context.Context, viewerUserID string) (map[string]struct{}, error) {
	return r.members(ctx, likedKey(viewerUserID))
}

func (r *reactionRepository) PassedIDs(ctx context.Context, viewerUserID string) (map[string]struct{}, error) {
	return r.members(ctx, passedKey(viewerUserID))
}

func (r *reactionRepository) ClearPasses(ctx context.Context, viewerUserID string) (int, error) {
	key := passedKey(viewerUserID)
	count, err := r.client.SCard(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *reactionRepository) members(ctx context.Context, key string) (map[string]struct{}, error) {
	ids, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}
