package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
	"github.com/mitcampus/campus-companion/internal/core/session"
)

// ReportRouter hands a stored report to campus staff asynchronously.
type ReportRouter interface {
	Enqueue(report domain.Report)
}

type ReportService struct {
	repo   ports.ReportRepository
	router ReportRouter
	now    func() time.Time
	log    zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, router ReportRouter, log zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, router: router, now: time.Now, log: log}
}

// Submit validates and stores a report, then routes it. The reporter's email is
// kept only when the report is not anonymous.
func (s *ReportService) Submit(ctx context.Context, sess *session.Session, in ports.SubmitReportInput) (*domain.Report, error) {
	description := strings.TrimSpace(in.Description)
	if in.Category == "" || description == "" {
		return nil, domain.ErrMissingField
	}
	category, ok := domain.FindReportCategory(in.Category)
	if !ok {
		return nil, domain.ErrUnknownCategory
	}

	now := s.now()
	report := &domain.Report{
		ID:          uuid.NewString(),
		ReferenceID: referenceID(now),
		Category:    category.Value,
		Description: description,
		Location:    strings.TrimSpace(in.Location),
		Anonymous:   in.Anonymous,
		Urgent:      category.Urgent,
		SubmittedAt: now.UTC(),
	}
	if !in.Anonymous {
		if u := sess.User(); u != nil {
			report.Reporter = u.Email
		}
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("submit report: %w", err)
	}
	s.router.Enqueue(*report)

	s.log.Info().
		Str("report_id", report.ID).
		Str("reference_id", report.ReferenceID).
		Str("category", report.Category).
		Bool("urgent", report.Urgent).
		Msg("report submitted")
	return report, nil
}

// referenceID formats MIT-<last six digits of the millisecond clock>.
func referenceID(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	return "MIT-" + ms
}
