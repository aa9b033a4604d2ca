package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

func TestAnnouncementService_ListAndRecent(t *testing.T) {
	repo := &stubAnnouncementRepo{items: SeedAnnouncements(time.Now())}
	svc := NewAnnouncementService(repo, zerolog.Nop())
	ctx := context.Background()

	all, err := svc.List(ctx, "", domain.FilterAll)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != len(repo.items) {
		t.Fatalf("empty search must return everything: %d", len(all))
	}

	high, _ := svc.List(ctx, "", "high")
	for _, a := range high {
		if a.Priority != domain.PriorityHigh {
			t.Fatalf("filter leaked %+v", a)
		}
	}

	recent, _ := svc.Recent(ctx, 3)
	if len(recent) != 3 || recent[0].ID != all[0].ID {
		t.Fatalf("unexpected recent: %+v", recent)
	}
}

func TestDashboardService_Dashboard(t *testing.T) {
	repo := &stubAnnouncementRepo{items: SeedAnnouncements(time.Now())}
	svc := NewDashboardService(NewAnnouncementService(repo, zerolog.Nop()))

	d, err := svc.Dashboard(context.Background(), studentSession(t))
	if err != nil {
		t.Fatalf("Dashboard returned error: %v", err)
	}
	if len(d.RecentAnnouncements) != 3 || len(d.TodaySchedule) != 4 || len(d.QuickActions) != 12 {
		t.Fatalf("unexpected dashboard: %+v", d)
	}

	high := 0
	for _, a := range repo.items {
		if a.Priority == domain.PriorityHigh {
			high++
		}
	}
	for _, s := range d.QuickStats {
		if s.Label == "New Notifications" && s.Value != strconv.Itoa(high) {
			t.Fatalf("notifications = %s, want %d", s.Value, high)
		}
	}
}

func TestSeed_OnlyFillsEmptyStores(t *testing.T) {
	ann := &stubAnnouncementRepo{}
	posts := newStubPostRepo()
	ctx := context.Background()

	if err := Seed(ctx, ann, posts, zerolog.Nop()); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if err := Seed(ctx, ann, posts, zerolog.Nop()); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if len(ann.items) != 8 {
		t.Fatalf("expected 8 announcements, got %d", len(ann.items))
	}
	seen := map[int]bool{}
	for _, a := range ann.items {
		if seen[a.ID] {
			t.Fatalf("announcement %d seeded twice", a.ID)
		}
		seen[a.ID] = true
	}
	if n, _ := posts.Count(ctx); n != 3 {
		t.Fatalf("expected 3 posts, got %d", n)
	}
}
