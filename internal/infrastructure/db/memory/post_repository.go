package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

type PostRepository struct {
	mu    sync.RWMutex
	posts map[string]*domain.Post
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[string]*domain.Post)}
}

func clonePost(p *domain.Post) domain.Post {
	c := *p
	c.Tags = append([]string(nil), p.Tags...)
	return c
}

func (r *PostRepository) List(_ context.Context) ([]domain.Post, error) {
	r.mu.RLock()
	out := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].Timestamp.After(out[j].Timestamp)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *PostRepository) FindByID(_ context.Context, id string) (*domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	c := clonePost(p)
	return &c, nil
}

func (r *PostRepository) Create(_ context.Context, p *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := clonePost(p)
	r.posts[p.ID] = &c
	return nil
}

// AdjustVotes applies both deltas under one lock. Counters never go negative.
func (r *PostRepository) AdjustVotes(_ context.Context, id string, upDelta, downDelta int) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Upvotes = max(p.Upvotes+upDelta, 0)
	p.Downvotes = max(p.Downvotes+downDelta, 0)
	c := clonePost(p)
	return &c, nil
}

func (r *PostRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.posts)), nil
}
