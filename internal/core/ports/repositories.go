package ports

import (
	"context"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

// AnnouncementRepository stores published announcements.
type AnnouncementRepository interface {
	// List returns all announcements, most recently published first.
	List(ctx context.Context) ([]domain.Announcement, error)
	// Create assigns the next numeric ID and stores a.
	Create(ctx context.Context, a *domain.Announcement) error
	Count(ctx context.Context) (int64, error)
}

// PostRepository stores community posts and their vote counters.
type PostRepository interface {
	// List returns all posts, newest first.
	List(ctx context.Context) ([]domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, p *domain.Post) error
	// AdjustVotes atomically adds the deltas to the counters and returns the updated post.
	AdjustVotes(ctx context.Context, id string, upDelta, downDelta int) (*domain.Post, error)
	Count(ctx context.Context) (int64, error)
}

// VoteStore remembers each voter's current vote per post. A voter is a session.
type VoteStore interface {
	Get(ctx context.Context, voterID, postID string) (domain.Vote, error)
	// GetMany returns votes for the given posts; posts without a vote are omitted.
	GetMany(ctx context.Context, voterID string, postIDs []string) (map[string]domain.Vote, error)
	Set(ctx context.Context, voterID, postID string, vote domain.Vote) error
}

// ReportRepository stores submitted incident reports.
type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) error
	// List returns reports, newest first.
	List(ctx context.Context) ([]domain.Report, error)
	Count(ctx context.Context) (int64, error)
}
