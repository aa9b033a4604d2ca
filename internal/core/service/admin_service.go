package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
	"github.com/mitcampus/campus-companion/internal/core/session"
)

const (
	accessDeniedMessage = "Access Denied"
	recentActivityLimit = 5
	defaultDepartment   = "Administration"
)

// ReportExporter renders reports into a downloadable document.
type ReportExporter interface {
	Export(w io.Writer, reports []domain.Report) error
}

type AdminService struct {
	announcements ports.AnnouncementRepository
	posts         ports.PostRepository
	reports       ports.ReportRepository
	exporter      ReportExporter
	now           func() time.Time
	log           zerolog.Logger
}

func NewAdminService(
	announcements ports.AnnouncementRepository,
	posts ports.PostRepository,
	reports ports.ReportRepository,
	exporter ReportExporter,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		announcements: announcements,
		posts:         posts,
		reports:       reports,
		exporter:      exporter,
		now:           time.Now,
		log:           log,
	}
}

// Overview returns the admin dashboard. Non-admin sessions get the static
// Access Denied placeholder instead of an error.
func (s *AdminService) Overview(ctx context.Context, sess *session.Session) (*domain.AdminOverview, error) {
	if sess.Role() != domain.RoleAdmin {
		return &domain.AdminOverview{AccessDenied: true, Message: accessDeniedMessage}, nil
	}

	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}
	announcements, err := s.announcements.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}
	reports, err := s.reports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("admin overview: %w", err)
	}

	urgent := 0
	for _, r := range reports {
		if r.Urgent {
			urgent++
		}
	}

	return &domain.AdminOverview{
		Stats: []domain.QuickStat{
			{Label: "Active Posts", Value: strconv.Itoa(len(posts))},
			{Label: "Announcements", Value: strconv.Itoa(len(announcements))},
			{Label: "Reported Content", Value: strconv.Itoa(len(reports))},
			{Label: "Urgent Reports", Value: strconv.Itoa(urgent)},
		},
		RecentActivity: s.recentActivity(posts, announcements),
	}, nil
}

// recentActivity merges the newest posts and announcements into one feed.
func (s *AdminService) recentActivity(posts []domain.Post, announcements []domain.Announcement) []domain.ActivityEntry {
	type item struct {
		at    time.Time
		entry domain.ActivityEntry
	}
	now := s.now()
	items := make([]item, 0, len(posts)+len(announcements))
	for _, p := range posts {
		items = append(items, item{p.Timestamp, domain.ActivityEntry{
			User:   p.Author.Name,
			Action: "Created post in " + titleCase(p.Community),
			Time:   domain.TimeAgo(p.Timestamp, now),
		}})
	}
	for _, a := range announcements {
		items = append(items, item{a.PublishedAt, domain.ActivityEntry{
			User:   "Admin",
			Action: "Posted announcement: " + a.Title,
			Time:   domain.TimeAgo(a.PublishedAt, now),
		}})
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].at.After(items[j].at) })
	if len(items) > recentActivityLimit {
		items = items[:recentActivityLimit]
	}
	out := make([]domain.ActivityEntry, len(items))
	for i, it := range items {
		out[i] = it.entry
	}
	return out
}

// PublishAnnouncement stores a new announcement. Only admins may publish.
func (s *AdminService) PublishAnnouncement(ctx context.Context, sess *session.Session, in ports.PublishAnnouncementInput) (*domain.Announcement, error) {
	if sess.Role() != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, domain.ErrMissingField
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, domain.ErrInvalidPriority
	}

	a := &domain.Announcement{
		Title:          title,
		Content:        content,
		Priority:       priority,
		Timestamp:      "Just now",
		Department:     orDefault(in.Department, defaultDepartment),
		TargetBranch:   orDefault(in.TargetBranch, domain.FilterAll),
		TargetSemester: orDefault(in.TargetSemester, domain.FilterAll),
		PublishedAt:    s.now().UTC(),
	}
	if err := s.announcements.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("publish announcement: %w", err)
	}

	s.log.Info().Int("announcement_id", a.ID).Str("priority", string(a.Priority)).Msg("announcement published")
	return a, nil
}

// ExportReports writes every submitted report to w. Only admins may export.
func (s *AdminService) ExportReports(ctx context.Context, sess *session.Session, w io.Writer) error {
	if sess.Role() != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	reports, err := s.reports.List(ctx)
	if err != nil {
		return fmt.Errorf("export reports: %w", err)
	}
	if err := s.exporter.Export(w, reports); err != nil {
		return fmt.Errorf("export reports: %w", err)
	}
	return nil
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
