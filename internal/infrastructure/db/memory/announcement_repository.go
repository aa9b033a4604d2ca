package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

type AnnouncementRepository struct {
	mu     sync.RWMutex
	items  []domain.Announcement
	nextID int
}

func NewAnnouncementRepository() *AnnouncementRepository {
	return &AnnouncementRepository{nextID: 1}
}

// List returns a copy ordered by PublishedAt descending, ties broken by higher ID.
func (r *AnnouncementRepository) List(_ context.Context) ([]domain.Announcement, error) {
	r.mu.RLock()
	out := make([]domain.Announcement, len(r.items))
	copy(out, r.items)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PublishedAt.Equal(out[j].PublishedAt) {
			return out[i].PublishedAt.After(out[j].PublishedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *AnnouncementRepository) Create(_ context.Context, a *domain.Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == 0 {
		a.ID = r.nextID
	}
	if a.ID >= r.nextID {
		r.nextID = a.ID + 1
	}
	r.items = append(r.items, *a)
	return nil
}

func (r *AnnouncementRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.items)), nil
}
