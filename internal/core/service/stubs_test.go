package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/session"
)

type stubSessionStore struct {
	records map[string]*domain.User
	saveErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{records: make(map[string]*domain.User)}
}

func (s *stubSessionStore) Load(_ context.Context, id string) (*domain.User, error) {
	return s.records[id].Clone(), nil
}

func (s *stubSessionStore) Save(_ context.Context, id string, u *domain.User) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records[id] = u.Clone()
	return nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(s.records, id)
	return nil
}

// openSession returns a session backed by store, pre-populated with user when non-nil.
func openSession(t *testing.T, store *stubSessionStore, id string, user *domain.User) *session.Session {
	t.Helper()
	if user != nil {
		store.records[id] = user.Clone()
	}
	return session.NewManager(store, zerolog.Nop()).Open(context.Background(), id)
}

func studentSession(t *testing.T) *session.Session {
	branch := domain.BranchComputerScience
	sem := 3
	return openSession(t, newStubSessionStore(), "sid-student", &domain.User{
		ID: "1", Email: "asha@mitmusaffarpur.edu.in", Name: "asha",
		Role: domain.RoleStudent, Course: domain.CourseEngineering,
		Branch: &branch, Semester: &sem, ProfileComplete: true,
	})
}

func adminSession(t *testing.T) *session.Session {
	return openSession(t, newStubSessionStore(), "sid-admin", &domain.User{
		ID: "1", Email: "admin@mitmusaffarpur.edu.in", Name: "admin",
		Role: domain.RoleAdmin, Course: domain.CourseEngineering,
	})
}

type stubPostRepo struct {
	mu       sync.Mutex
	posts    map[string]*domain.Post
	adjustFn func(id string, up, down int) error
}

func newStubPostRepo(posts ...domain.Post) *stubPostRepo {
	r := &stubPostRepo{posts: make(map[string]*domain.Post)}
	for i := range posts {
		p := posts[i]
		r.posts[p.ID] = &p
	}
	return r
}

func (r *stubPostRepo) List(_ context.Context) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	c := *p
	return &c, nil
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *p
	r.posts[p.ID] = &c
	return nil
}

func (r *stubPostRepo) AdjustVotes(_ context.Context, id string, up, down int) (*domain.Post, error) {
	if r.adjustFn != nil {
		if err := r.adjustFn(id, up, down); err != nil {
			return nil, err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	p.Upvotes = max(p.Upvotes+up, 0)
	p.Downvotes = max(p.Downvotes+down, 0)
	c := *p
	return &c, nil
}

func (r *stubPostRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.posts)), nil
}

type stubVoteStore struct {
	votes  map[string]domain.Vote
	setErr error
}

func newStubVoteStore() *stubVoteStore {
	return &stubVoteStore{votes: make(map[string]domain.Vote)}
}

func (s *stubVoteStore) Get(_ context.Context, voter, post string) (domain.Vote, error) {
	if v, ok := s.votes[voter+"/"+post]; ok {
		return v, nil
	}
	return domain.VoteNone, nil
}

func (s *stubVoteStore) GetMany(_ context.Context, voter string, posts []string) (map[string]domain.Vote, error) {
	out := make(map[string]domain.Vote)
	for _, p := range posts {
		if v, ok := s.votes[voter+"/"+p]; ok {
			out[p] = v
		}
	}
	return out, nil
}

func (s *stubVoteStore) Set(_ context.Context, voter, post string, v domain.Vote) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.votes[voter+"/"+post] = v
	return nil
}

type stubAnnouncementRepo struct {
	items     []domain.Announcement
	createErr error
}

func (r *stubAnnouncementRepo) List(_ context.Context) ([]domain.Announcement, error) {
	out := make([]domain.Announcement, len(r.items))
	copy(out, r.items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PublishedAt.After(out[j].PublishedAt) })
	return out, nil
}

func (r *stubAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) error {
	if r.createErr != nil {
		return r.createErr
	}
	if a.ID == 0 {
		a.ID = len(r.items) + 1
	}
	r.items = append(r.items, *a)
	return nil
}

func (r *stubAnnouncementRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

type stubReportRepo struct {
	reports   []domain.Report
	createErr error
}

func (r *stubReportRepo) Create(_ context.Context, rep *domain.Report) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.reports = append(r.reports, *rep)
	return nil
}

func (r *stubReportRepo) List(_ context.Context) ([]domain.Report, error) {
	return append([]domain.Report(nil), r.reports...), nil
}

func (r *stubReportRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.reports)), nil
}

var errBoom = errors.New("boom")
