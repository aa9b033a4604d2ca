package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
	"github.com/mitcampus/campus-companion/internal/core/session"
)

const recentAnnouncementCount = 3

type DashboardService struct {
	announcements ports.AnnouncementService
}

func NewDashboardService(announcements ports.AnnouncementService) *DashboardService {
	return &DashboardService{announcements: announcements}
}

// Dashboard assembles the landing view. New Notifications counts high-priority
// announcements.
func (s *DashboardService) Dashboard(ctx context.Context, _ *session.Session) (*domain.Dashboard, error) {
	recent, err := s.announcements.Recent(ctx, recentAnnouncementCount)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	urgent, err := s.announcements.List(ctx, "", string(domain.PriorityHigh))
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	schedule := make([]domain.ScheduleItem, len(todaySchedule))
	copy(schedule, todaySchedule)
	actions := make([]domain.QuickAction, len(quickActions))
	copy(actions, quickActions)

	return &domain.Dashboard{
		QuickStats: []domain.QuickStat{
			{Label: "Today's Classes", Value: strconv.Itoa(len(schedule))},
			{Label: "New Notifications", Value: strconv.Itoa(len(urgent))},
			{Label: "Club Events", Value: "2"},
			{Label: "Next Class", Value: "2:30 PM"},
		},
		TodaySchedule:       schedule,
		RecentAnnouncements: recent,
		QuickActions:        actions,
	}, nil
}
