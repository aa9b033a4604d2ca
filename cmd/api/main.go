// @title           Campus Companion API
// @version         1.0
// @description     Student portal API: session identity, announcements, community board, assistant chat, support directory and anonymous reporting.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	_ "github.com/mitcampus/campus-companion/docs"
	"github.com/mitcampus/campus-companion/internal/api"
	"github.com/mitcampus/campus-companion/internal/api/metrics"
	"github.com/mitcampus/campus-companion/internal/api/middleware"
	"github.com/mitcampus/campus-companion/internal/core/ports"
	"github.com/mitcampus/campus-companion/internal/core/service"
	"github.com/mitcampus/campus-companion/internal/core/session"
	"github.com/mitcampus/campus-companion/internal/infrastructure/config"
	"github.com/mitcampus/campus-companion/internal/infrastructure/db/memory"
	"github.com/mitcampus/campus-companion/internal/infrastructure/db/mongo"
	"github.com/mitcampus/campus-companion/internal/infrastructure/db/redis"
	"github.com/mitcampus/campus-companion/internal/infrastructure/export"
	"github.com/mitcampus/campus-companion/internal/infrastructure/generative"
	"github.com/mitcampus/campus-companion/internal/infrastructure/queue"
	"github.com/mitcampus/campus-companion/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type repositories struct {
	announcements ports.AnnouncementRepository
	posts         ports.PostRepository
	reports       ports.ReportRepository
	sessions      session.Store
	votes         ports.VoteStore
	checks        map[string]func(ctx context.Context) error
	closers       []func(ctx context.Context)
}

func run() error {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.Production(),
		Service: "campus-companion",
	})

	repos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for _, closeFn := range repos.closers {
			closeFn(shutdownCtx)
		}
	}()

	if err := service.Seed(ctx, repos.announcements, repos.posts, logger.Component("seed")); err != nil {
		return err
	}

	dispatcher := queue.NewDispatcher(
		cfg.Reports.Workers,
		queue.NewAlertHandler(metrics.Recorder{}, logger.Component("reports")),
		logger.Component("dispatcher"),
	)
	dispatcher.Start(ctx)

	var generator ports.TextGenerator
	if cfg.Gemini.APIKey != "" {
		generator = generative.NewClient(generative.Config{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
			Timeout: cfg.Gemini.Timeout,
		})
		log.Info().Str("model", cfg.Gemini.Model).Msg("generative chat enabled")
	}

	announcementService := service.NewAnnouncementService(repos.announcements, logger.Component("announcements"))
	e := api.NewRouter(api.Deps{
		Identity:      service.NewIdentityService(cfg.Session.EmailDomain, logger.Component("identity")),
		Announcements: announcementService,
		Community:     service.NewCommunityService(repos.posts, repos.votes, logger.Component("community")),
		Chat:          service.NewChatService(generator, cfg.Chat.TypingDelay, logger.Component("chat")),
		Reports:       service.NewReportService(repos.reports, dispatcher, logger.Component("reports")),
		Admin: service.NewAdminService(
			repos.announcements, repos.posts, repos.reports,
			export.NewXLSXExporter(), logger.Component("admin"),
		),
		Dashboard:    service.NewDashboardService(announcementService),
		Support:      service.SupportDirectory(),
		Tokens:       middleware.NewTokens(cfg.Session.JWTSecret, cfg.Session.TTL),
		Sessions:     session.NewManager(repos.sessions, logger.Component("session")),
		HealthChecks: repos.checks,
		Log:          log,
	})

	srvErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("storage", cfg.Storage.Backend).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
	}()

	select {
	case err := <-srvErr:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	dispatcher.Wait()
	return nil
}

// openRepositories picks Mongo or in-memory repositories and Redis or
// in-memory session and vote stores.
func openRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*repositories, error) {
	r := &repositories{checks: make(map[string]func(ctx context.Context) error)}

	switch cfg.Storage.Backend {
	case config.StorageMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		posts := mongo.NewPostRepository(db)
		reports := mongo.NewReportRepository(db)
		if err := posts.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("post indexes not created")
		}
		if err := reports.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("report indexes not created")
		}
		r.announcements = mongo.NewAnnouncementRepository(db)
		r.posts = posts
		r.reports = reports
		r.checks["mongodb"] = func(ctx context.Context) error { return mongo.Ping(ctx, db) }
		r.closers = append(r.closers, func(ctx context.Context) { disconnectMongo(ctx, client, log) })
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")
	default:
		r.announcements = memory.NewAnnouncementRepository()
		r.posts = memory.NewPostRepository()
		r.reports = memory.NewReportRepository()
	}

	if cfg.Redis.Addr == "" {
		r.sessions = memory.NewSessionStore()
		r.votes = memory.NewVoteStore()
		return r, nil
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		for _, closeFn := range r.closers {
			closeFn(ctx)
		}
		return nil, err
	}
	r.sessions = redis.NewSessionStore(rdb, cfg.Session.TTL)
	r.votes = redis.NewVoteStore(rdb, cfg.Session.TTL)
	r.checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	r.closers = append(r.closers, func(context.Context) { closeRedis(rdb, log) })
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	return r, nil
}

func disconnectMongo(ctx context.Context, client *mongodriver.Client, log zerolog.Logger) {
	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}
}

func closeRedis(client *goredis.Client, log zerolog.Logger) {
	if err := client.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}
}
