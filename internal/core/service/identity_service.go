package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/domain"
	"github.com/mitcampus/campus-companion/internal/core/ports"
	"github.com/mitcampus/campus-companion/internal/core/session"
)

const (
	DefaultEmailDomain = "@mitmusaffarpur.edu.in"
	minPasswordLength  = 6
)

// IdentityService implements login, registration, guest entry and profile
// updates. There is no credential store: any password is accepted for an
// institutional address.
type IdentityService struct {
	emailDomain string
	now         func() time.Time
	log         zerolog.Logger
}

func NewIdentityService(emailDomain string, log zerolog.Logger) *IdentityService {
	if emailDomain == "" {
		emailDomain = DefaultEmailDomain
	}
	return &IdentityService{emailDomain: emailDomain, now: time.Now, log: log}
}

// institutional reports whether email carries the required suffix.
// The match is case-sensitive.
func (s *IdentityService) institutional(email string) bool {
	return strings.HasSuffix(email, s.emailDomain)
}

func (s *IdentityService) Login(ctx context.Context, sess *session.Session, email, password string) (*domain.User, error) {
	if !s.institutional(email) {
		s.log.Debug().Str("session_id", sess.ID()).Msg("login rejected: non-institutional email")
		return nil, domain.ErrInvalidCredentials
	}

	local := domain.LocalPart(email)
	role := domain.RoleStudent
	if strings.Contains(local, "admin") {
		role = domain.RoleAdmin
	}

	user, err := sess.Update(ctx, func(*domain.User) (*domain.User, error) {
		return &domain.User{
			ID:     "1",
			Email:  email,
			Name:   local,
			Role:   role,
			Course: domain.CourseEngineering,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("session_id", sess.ID()).Str("role", string(user.Role)).Msg("user logged in")
	return user, nil
}

func (s *IdentityService) Register(ctx context.Context, sess *session.Session, in ports.RegisterInput) (*domain.User, error) {
	if strings.TrimSpace(in.Name) == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingField
	}
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}
	if !s.institutional(in.Email) {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := sess.Update(ctx, func(*domain.User) (*domain.User, error) {
		u := &domain.User{
			ID:              strconv.FormatInt(s.now().UnixMilli(), 10),
			Email:           in.Email,
			Name:            in.Name,
			Role:            domain.RoleStudent,
			Course:          domain.CourseEngineering,
			Branch:          in.Branch,
			Semester:        in.Semester,
			YearOfAdmission: in.YearOfAdmission,
		}
		u.ProfileComplete = u.HasAcademicProfile()
		return u, nil
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("session_id", sess.ID()).Str("user_id", user.ID).Bool("profile_complete", user.ProfileComplete).Msg("user registered")
	return user, nil
}

func (s *IdentityService) LoginAsGuest(ctx context.Context, sess *session.Session) (*domain.User, error) {
	user, err := sess.Update(ctx, func(*domain.User) (*domain.User, error) {
		return &domain.User{
			ID:              "guest-user",
			Email:           "guest@example.com",
			Name:            "Guest User",
			Role:            domain.RoleGuest,
			Course:          domain.CourseOther,
			ProfileComplete: true,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("guest login: %w", err)
	}
	return user, nil
}

// UpdateProfile merges the provided fields. Profile completeness never reverts.
func (s *IdentityService) UpdateProfile(ctx context.Context, sess *session.Session, in ports.ProfileUpdate) (*domain.User, error) {
	user, err := sess.Update(ctx, func(current *domain.User) (*domain.User, error) {
		if current == nil {
			return nil, domain.ErrNoSession
		}
		next := current.Clone()
		if in.Name != nil {
			next.Name = *in.Name
		}
		if in.Branch != nil {
			b := *in.Branch
			next.Branch = &b
		}
		if in.Semester != nil {
			sem := *in.Semester
			next.Semester = &sem
		}
		if in.YearOfAdmission != nil {
			y := *in.YearOfAdmission
			next.YearOfAdmission = &y
		}
		next.ProfileComplete = suppliesAcademicProfile(in) || current.ProfileComplete
		return next, nil
	})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

// Logout clears the session unconditionally.
func (s *IdentityService) Logout(ctx context.Context, sess *session.Session) error {
	if err := sess.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Info().Str("session_id", sess.ID()).Msg("session cleared")
	return nil
}

func suppliesAcademicProfile(in ports.ProfileUpdate) bool {
	return in.Branch != nil && *in.Branch != "" && in.Semester != nil && *in.Semester != 0
}
