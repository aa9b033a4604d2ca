package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
)

type stubRouter struct {
	routed []domain.Report
}

func (r *stubRouter) Enqueue(rep domain.Report) { r.routed = append(r.routed, rep) }

func TestReportService_Submit_Validation(t *testing.T) {
	repo := &stubReportRepo{}
	router := &stubRouter{}
	svc := NewReportService(repo, router, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Submit(ctx, studentSession(t), ports.SubmitReportInput{Category: "safety", Description: "  "}); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if _, err := svc.Submit(ctx, studentSession(t), ports.SubmitReportInput{Description: "x"}); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
	if _, err := svc.Submit(ctx, studentSession(t), ports.SubmitReportInput{Category: "noise", Description: "x"}); !errors.Is(err, domain.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	if len(repo.reports) != 0 || len(router.routed) != 0 {
		t.Fatalf("rejected reports must not be stored or routed")
	}
}

func TestReportService_Submit_Anonymous(t *testing.T) {
	repo := &stubReportRepo{}
	router := &stubRouter{}
	svc := NewReportService(repo, router, zerolog.Nop())

	rep, err := svc.Submit(context.Background(), studentSession(t), ports.SubmitReportInput{
		Category: "harassment", Description: "Ragging near hostel 3", Location: "Hostel 3", Anonymous: true,
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if rep.Reporter != "" {
		t.Fatalf("anonymous report must not carry the reporter: %q", rep.Reporter)
	}
	if !rep.Urgent {
		t.Fatalf("harassment is urgent")
	}
	if !regexp.MustCompile(`^MIT-\d{6}$`).MatchString(rep.ReferenceID) {
		t.Fatalf("unexpected reference: %s", rep.ReferenceID)
	}
	if len(repo.reports) != 1 || len(router.routed) != 1 || router.routed[0].ReferenceID != rep.ReferenceID {
		t.Fatalf("report not stored and routed")
	}
}

func TestReportService_Submit_Named(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, &stubRouter{}, zerolog.Nop())
	rep, err := svc.Submit(context.Background(), studentSession(t), ports.SubmitReportInput{
		Category: "maintenance", Description: "Fan broken in GH-301",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if rep.Reporter != "asha@mitmusaffarpur.edu.in" || rep.Urgent {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

func TestReportService_Submit_StoreFailureNotRouted(t *testing.T) {
	router := &stubRouter{}
	svc := NewReportService(&stubReportRepo{createErr: errBoom}, router, zerolog.Nop())
	if _, err := svc.Submit(context.Background(), studentSession(t), ports.SubmitReportInput{Category: "other", Description: "x"}); !errors.Is(err, errBoom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if len(router.routed) != 0 {
		t.Fatalf("unsaved report must not be routed")
	}
}

func TestReferenceID(t *testing.T) {
	if got := referenceID(time.UnixMilli(1717171717171)); got != "MIT-717171" {
		t.Fatalf("unexpected reference: %s", got)
	}
	if got := referenceID(time.UnixMilli(42)); got != "MIT-42" {
		t.Fatalf("unexpected short reference: %s", got)
	}
}

func TestReportService_Submit_SameMillisecondKeepsBoth(t *testing.T) {
	repo := &stubReportRepo{}
	svc := NewReportService(repo, &stubRouter{}, zerolog.Nop())
	fixed := time.UnixMilli(1717171717171)
	svc.now = func() time.Time { return fixed }

	in := ports.SubmitReportInput{Category: "safety", Description: "Loose wiring", Anonymous: true}
	first, err := svc.Submit(context.Background(), studentSession(t), in)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	second, err := svc.Submit(context.Background(), studentSession(t), in)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if first.ReferenceID != second.ReferenceID {
		t.Fatalf("expected the same display reference, got %s and %s", first.ReferenceID, second.ReferenceID)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("reports need distinct ids: %q %q", first.ID, second.ID)
	}
	if len(repo.reports) != 2 {
		t.Fatalf("expected both reports stored, got %d", len(repo.reports))
	}
}
