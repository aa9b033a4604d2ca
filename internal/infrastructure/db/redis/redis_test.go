package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/mitcampus/campus-companion/internal/core/domain"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestSessionStore_RoundTrip(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewSessionStore(client, time.Hour)
	ctx := context.Background()

	branch := domain.BranchComputerScience
	sem := 3
	in := &domain.User{
		ID: "1", Email: "asha@mitmusaffarpur.edu.in", Name: "asha",
		Role: domain.RoleStudent, Course: domain.CourseEngineering,
		Branch: &branch, Semester: &sem, ProfileComplete: true,
	}
	if err := store.Save(ctx, "sid-1", in); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !mr.Exists("mit-user:sid-1") {
		t.Fatalf("expected key mit-user:sid-1 to exist")
	}
	if ttl := mr.TTL("mit-user:sid-1"); ttl != time.Hour {
		t.Fatalf("unexpected ttl: %v", ttl)
	}

	got, err := store.Load(ctx, "sid-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.Email != in.Email || got.Branch == nil || *got.Branch != branch || !got.ProfileComplete {
		t.Fatalf("unexpected user: %+v", got)
	}

	if err := store.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = store.Load(ctx, "sid-1")
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil) after delete, got %+v, %v", got, err)
	}
}

func TestSessionStore_CorruptRecord(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewSessionStore(client, 0)

	if err := mr.Set("mit-user:bad", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := store.Load(context.Background(), "bad"); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestVoteStore_SetGetClear(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewVoteStore(client, time.Hour)
	ctx := context.Background()

	v, err := store.Get(ctx, "sid-1", "p1")
	if err != nil || v != domain.VoteNone {
		t.Fatalf("expected none, got %q, %v", v, err)
	}

	if err := store.Set(ctx, "sid-1", "p1", domain.VoteUp); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "sid-1", "p2", domain.VoteDown); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := mr.HGet("votes:sid-1", "p1"); got != "up" {
		t.Fatalf("unexpected hash value: %q", got)
	}

	many, err := store.GetMany(ctx, "sid-1", []string{"p1", "p2", "p3"})
	if err != nil {
		t.Fatalf("get many: %v", err)
	}
	if len(many) != 2 || many["p1"] != domain.VoteUp || many["p2"] != domain.VoteDown {
		t.Fatalf("unexpected votes: %v", many)
	}

	if err := store.Set(ctx, "sid-1", "p1", domain.VoteNone); err != nil {
		t.Fatalf("clear: %v", err)
	}
	v, _ = store.Get(ctx, "sid-1", "p1")
	if v != domain.VoteNone {
		t.Fatalf("expected cleared vote, got %q", v)
	}

	other, _ := store.GetMany(ctx, "sid-2", []string{"p2"})
	if len(other) != 0 {
		t.Fatalf("votes leaked across voters: %v", other)
	}
}
