package ports

import (
	"context"
	"io"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/session"
)

// RegisterInput is the registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Branch          *domain.Branch
	Semester        *int
	YearOfAdmission *int
}

// ProfileUpdate is a partial user; nil fields are left untouched.
type ProfileUpdate struct {
	Name            *string
	Branch          *domain.Branch
	Semester        *int
	YearOfAdmission *int
}

// IdentityService authenticates a session.
type IdentityService interface {
	Login(ctx context.Context, s *session.Session, email, password string) (*domain.User, error)
	Register(ctx context.Context, s *session.Session, in RegisterInput) (*domain.User, error)
	LoginAsGuest(ctx context.Context, s *session.Session) (*domain.User, error)
	UpdateProfile(ctx context.Context, s *session.Session, in ProfileUpdate) (*domain.User, error)
	Logout(ctx context.Context, s *session.Session) error
}

// AnnouncementService serves the announcement board.
type AnnouncementService interface {
	List(ctx context.Context, term, filter string) ([]domain.Announcement, error)
	Recent(ctx context.Context, n int) ([]domain.Announcement, error)
}

// PublishAnnouncementInput is the admin announcement form.
type PublishAnnouncementInput struct {
	Title          string
	Content        string
	Priority       domain.Priority
	TargetBranch   string
	TargetSemester string
	Department     string
}

// CreatePostInput is the new-post form.
type CreatePostInput struct {
	Title     string
	Content   string
	Community string
	Tags      string
}

// CommunityService serves the community board.
type CommunityService interface {
	List(ctx context.Context, s *session.Session, term, community string) ([]domain.Post, error)
	Create(ctx context.Context, s *session.Session, in CreatePostInput) (*domain.Post, error)
	Vote(ctx context.Context, s *session.Session, postID string, direction domain.Vote) (*domain.Post, error)
}

// SubmitReportInput is the reporting form. Anonymous defaults to true at the transport layer.
type SubmitReportInput struct {
	Category    string
	Description string
	Location    string
	Anonymous   bool
}

// ReportService accepts incident reports.
type ReportService interface {
	Submit(ctx context.Context, s *session.Session, in SubmitReportInput) (*domain.Report, error)
}

// ChatReply is the assistant's answer to a user message.
type ChatReply struct {
	Message domain.ChatMessage
	Intent  domain.Intent
	// Source is "canned", "generative" or "fallback".
	Source string
}

// ChatService answers assistant questions.
type ChatService interface {
	Greeting() domain.ChatMessage
	QuickQuestions() []string
	Ask(ctx context.Context, message string) (*ChatReply, error)
}

// AdminService backs the admin dashboard.
type AdminService interface {
	Overview(ctx context.Context, s *session.Session) (*domain.AdminOverview, error)
	PublishAnnouncement(ctx context.Context, s *session.Session, in PublishAnnouncementInput) (*domain.Announcement, error)
	ExportReports(ctx context.Context, s *session.Session, w io.Writer) error
}

// DashboardService builds the landing view.
type DashboardService interface {
	Dashboard(ctx context.Context, s *session.Session) (*domain.Dashboard, error)
}
