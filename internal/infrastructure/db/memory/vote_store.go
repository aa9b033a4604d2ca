package memory

import (
	"context"
	"sync"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

// VoteStore maps voter -> post -> vote. A VoteNone entry is removed.
type VoteStore struct {
	mu    sync.RWMutex
	votes map[string]map[string]domain.Vote
}

func NewVoteStore() *VoteStore {
	return &VoteStore{votes: make(map[string]map[string]domain.Vote)}
}

func (s *VoteStore) Get(_ context.Context, voterID, postID string) (domain.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.votes[voterID][postID]; ok {
		return v, nil
	}
	return domain.VoteNone, nil
}

func (s *VoteStore) GetMany(_ context.Context, voterID string, postIDs []string) (map[string]domain.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.Vote, len(postIDs))
	byPost := s.votes[voterID]
	for _, id := range postIDs {
		if v, ok := byPost[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func (s *VoteStore) Set(_ context.Context, voterID, postID string, vote domain.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if vote == domain.VoteNone {
		delete(s.votes[voterID], postID)
		return nil
	}
	byPost, ok := s.votes[voterID]
	if !ok {
		byPost = make(map[string]domain.Vote)
		s.votes[voterID] = byPost
	}
	byPost[postID] = vote
	return nil
}
