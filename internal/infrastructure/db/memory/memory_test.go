package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

func TestAnnouncementRepository_AssignsIDsAndOrders(t *testing.T) {
	ctx := context.Background()
	repo := NewAnnouncementRepository()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	seeded := &domain.Announcement{ID: 8, Title: "seeded", PublishedAt: base}
	if err := repo.Create(ctx, seeded); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	fresh := &domain.Announcement{Title: "fresh", PublishedAt: base}
	_ = repo.Create(ctx, fresh)
	if fresh.ID != 9 {
		t.Fatalf("expected id 9 after seeded 8, got %d", fresh.ID)
	}
	newest := &domain.Announcement{Title: "newest", PublishedAt: base.Add(time.Hour)}
	_ = repo.Create(ctx, newest)

	list, _ := repo.List(ctx)
	if len(list) != 3 || list[0].Title != "newest" || list[1].Title != "fresh" || list[2].Title != "seeded" {
		t.Fatalf("unexpected order: %+v", list)
	}
	if n, _ := repo.Count(ctx); n != 3 {
		t.Fatalf("unexpected count %d", n)
	}
}

func TestPostRepository_AdjustVotesClampsAtZero(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()
	_ = repo.Create(ctx, &domain.Post{ID: "p1", Upvotes: 1, Tags: []string{"go"}})

	p, err := repo.AdjustVotes(ctx, "p1", -3, -1)
	if err != nil {
		t.Fatalf("AdjustVotes returned error: %v", err)
	}
	if p.Upvotes != 0 || p.Downvotes != 0 {
		t.Fatalf("counters went negative: %+v", p)
	}
	if _, err := repo.AdjustVotes(ctx, "missing", 1, 0); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	p.Tags[0] = "mutated"
	stored, _ := repo.FindByID(ctx, "p1")
	if stored.Tags[0] != "go" {
		t.Fatalf("returned post shares tag storage")
	}
}

func TestPostRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository()
	now := time.Now()
	_ = repo.Create(ctx, &domain.Post{ID: "old", Timestamp: now.Add(-time.Hour)})
	_ = repo.Create(ctx, &domain.Post{ID: "new", Timestamp: now})

	list, _ := repo.List(ctx)
	if len(list) != 2 || list[0].ID != "new" {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestReportRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository()
	_ = repo.Create(ctx, &domain.Report{ReferenceID: "MIT-1"})
	_ = repo.Create(ctx, &domain.Report{ReferenceID: "MIT-2"})

	list, _ := repo.List(ctx)
	if len(list) != 2 || list[0].ReferenceID != "MIT-2" {
		t.Fatalf("unexpected order: %+v", list)
	}
}

func TestVoteStore(t *testing.T) {
	ctx := context.Background()
	s := NewVoteStore()

	_ = s.Set(ctx, "a", "p1", domain.VoteUp)
	_ = s.Set(ctx, "b", "p1", domain.VoteDown)

	if v, _ := s.Get(ctx, "a", "p1"); v != domain.VoteUp {
		t.Fatalf("unexpected vote %s", v)
	}
	many, _ := s.GetMany(ctx, "b", []string{"p1", "p2"})
	if len(many) != 1 || many["p1"] != domain.VoteDown {
		t.Fatalf("unexpected votes %v", many)
	}

	_ = s.Set(ctx, "a", "p1", domain.VoteNone)
	if v, _ := s.Get(ctx, "a", "p1"); v != domain.VoteNone {
		t.Fatalf("vote not cleared: %s", v)
	}
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore()
	if u, err := s.Load(ctx, "missing"); u != nil || err != nil {
		t.Fatalf("missing record must be (nil, nil)")
	}

	sem := 4
	in := &domain.User{ID: "1", Semester: &sem}
	_ = s.Save(ctx, "sid", in)
	*in.Semester = 8

	out, _ := s.Load(ctx, "sid")
	if *out.Semester != 4 {
		t.Fatalf("store shares caller memory")
	}
	_ = s.Delete(ctx, "sid")
	if u, _ := s.Load(ctx, "sid"); u != nil {
		t.Fatalf("record not deleted")
	}
}
