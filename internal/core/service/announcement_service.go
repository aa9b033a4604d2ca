package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
)

type AnnouncementService struct {
	repo ports.AnnouncementRepository
	log  zerolog.Logger
}

func NewAnnouncementService(repo ports.AnnouncementRepository, log zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, log: log}
}

// List returns announcements matching term (title, content, department) and
// filter (priority or category, "all" for any).
func (s *AnnouncementService) List(ctx context.Context, term, filter string) ([]domain.Announcement, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return domain.FilterAnnouncements(all, term, filter), nil
}

// Recent returns at most n of the latest announcements.
func (s *AnnouncementService) Recent(ctx context.Context, n int) ([]domain.Announcement, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent announcements: %w", err)
	}
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}
