package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
	"github.com/mitcampus/campus-companion/internal/core/session"
)

type CommunityService struct {
	posts ports.PostRepository
	votes ports.VoteStore
	now   func() time.Time
	log   zerolog.Logger

	// voteMu serializes read-toggle-write of a vote so a double click cannot
	// apply the same transition twice.
	voteMu sync.Mutex
}

func NewCommunityService(posts ports.PostRepository, votes ports.VoteStore, log zerolog.Logger) *CommunityService {
	return &CommunityService{posts: posts, votes: votes, now: time.Now, log: log}
}

// List returns posts matching term (title, content, tags) within community,
// annotated with the session's own vote on each.
func (s *CommunityService) List(ctx context.Context, sess *session.Session, term, community string) ([]domain.Post, error) {
	all, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	matched := domain.FilterPosts(all, term, community)

	ids := make([]string, len(matched))
	for i, p := range matched {
		ids[i] = p.ID
	}
	votes, err := s.votes.GetMany(ctx, sess.ID(), ids)
	if err != nil {
		return nil, fmt.Errorf("load votes: %w", err)
	}
	for i := range matched {
		matched[i].UserVote = domain.VoteNone
		if v, ok := votes[matched[i].ID]; ok {
			matched[i].UserVote = v
		}
	}
	return matched, nil
}

// Create publishes a post authored by the session user.
func (s *CommunityService) Create(ctx context.Context, sess *session.Session, in ports.CreatePostInput) (*domain.Post, error) {
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" || in.Community == "" {
		return nil, domain.ErrMissingField
	}
	if !domain.IsCommunity(in.Community) {
		return nil, domain.ErrUnknownCommunity
	}

	post := &domain.Post{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Author:    authorOf(sess.User()),
		Community: in.Community,
		Tags:      domain.ParseTags(in.Tags),
		Timestamp: s.now().UTC(),
		UserVote:  domain.VoteNone,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.Info().Str("post_id", post.ID).Str("community", post.Community).Msg("post created")
	return post, nil
}

// Vote toggles the session's vote on a post. Repeating the active direction
// clears it.
func (s *CommunityService) Vote(ctx context.Context, sess *session.Session, postID string, direction domain.Vote) (*domain.Post, error) {
	if direction != domain.VoteUp && direction != domain.VoteDown {
		return nil, domain.ErrInvalidVote
	}

	s.voteMu.Lock()
	defer s.voteMu.Unlock()

	before, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("vote: %w", err)
	}

	current, err := s.votes.Get(ctx, sess.ID(), postID)
	if err != nil {
		return nil, fmt.Errorf("vote: load current: %w", err)
	}

	next, up, down := domain.ApplyVote(current, direction)
	updated, err := s.posts.AdjustVotes(ctx, postID, up, down)
	if err != nil {
		return nil, fmt.Errorf("vote: adjust counters: %w", err)
	}
	if err := s.votes.Set(ctx, sess.ID(), postID, next); err != nil {
		// undo what was applied; the repository may have clamped the deltas at zero
		undoUp := before.Upvotes - updated.Upvotes
		undoDown := before.Downvotes - updated.Downvotes
		if _, rbErr := s.posts.AdjustVotes(ctx, postID, undoUp, undoDown); rbErr != nil {
			s.log.Error().Err(rbErr).Str("post_id", postID).Msg("failed to revert vote counters")
		}
		return nil, fmt.Errorf("vote: store vote: %w", err)
	}

	updated.UserVote = next
	return updated, nil
}

func authorOf(u *domain.User) domain.Author {
	a := domain.Author{Name: "Anonymous", Branch: "Unknown"}
	if u == nil {
		return a
	}
	if u.Name != "" {
		a.Name = u.Name
	}
	if u.Branch != nil && *u.Branch != "" {
		a.Branch = strings.ToUpper(string(*u.Branch))
	}
	if u.Semester != nil {
		a.Semester = *u.Semester
	}
	return a
}
