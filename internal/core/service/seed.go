package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitcampus/campus-companion/internal/core/ports"
)

// Seed fills empty announcement and post stores with the starter board.
func Seed(ctx context.Context, announcements ports.AnnouncementRepository, posts ports.PostRepository, log zerolog.Logger) error {
	now := time.Now()

	n, err := announcements.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed announcements: %w", err)
	}
	if n == 0 {
		for _, a := range SeedAnnouncements(now) {
			if err := announcements.Create(ctx, &a); err != nil {
				return fmt.Errorf("seed announcement %d: %w", a.ID, err)
			}
		}
		log.Info().Msg("announcement board seeded")
	}

	n, err = posts.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	if n == 0 {
		for _, p := range SeedPosts(now) {
			if err := posts.Create(ctx, &p); err != nil {
				return fmt.Errorf("seed post %s: %w", p.ID, err)
			}
		}
		log.Info().Msg("community board seeded")
	}
	return nil
}
