package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

// VoteStore keeps one hash per voter mapping post id to vote direction.
// Key format: votes:<voter_id>
type VoteStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewVoteStore creates a VoteStore whose hashes expire ttl after the last write.
func NewVoteStore(client *redis.Client, ttl time.Duration) *VoteStore {
	return &VoteStore{client: client, ttl: ttl}
}

func (s *VoteStore) Get(ctx context.Context, voterID, postID string) (domain.Vote, error) {
	v, err := s.client.HGet(ctx, s.key(voterID), postID).Result()
	if errors.Is(err, redis.Nil) {
		return domain.VoteNone, nil
	}
	if err != nil {
		return "", fmt.Errorf("vote get: %w", err)
	}
	return domain.Vote(v), nil
}

func (s *VoteStore) GetMany(ctx context.Context, voterID string, postIDs []string) (map[string]domain.Vote, error) {
	out := make(map[string]domain.Vote, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	vals, err := s.client.HMGet(ctx, s.key(voterID), postIDs...).Result()
	if err != nil {
		return nil, fmt.Errorf("vote get many: %w", err)
	}
	for i, v := range vals {
		if str, ok := v.(string); ok {
			out[postIDs[i]] = domain.Vote(str)
		}
	}
	return out, nil
}

// Set stores vote, removing the field when the vote is cleared.
func (s *VoteStore) Set(ctx context.Context, voterID, postID string, vote domain.Vote) error {
	key := s.key(voterID)
	pipe := s.client.TxPipeline()
	if vote == domain.VoteNone {
		pipe.HDel(ctx, key, postID)
	} else {
		pipe.HSet(ctx, key, postID, string(vote))
	}
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("vote set: %w", err)
	}
	return nil
}

func (s *VoteStore) key(voterID string) string {
	return fmt.Sprintf("votes:%s", voterID)
}
