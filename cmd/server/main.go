// @title         ats-engine API
// @version       1.0
// @description   Resume-to-job-description matching engine: ATS scoring, gap analysis, resume optimization, bulk candidate ranking and shortlist management.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Recruiter token. Both "Bearer <JWT>" and "<JWT>" are accepted.
package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/atslens/ats-engine/docs"

	httpapi "github.com/atslens/ats-engine/api/http"
	"github.com/atslens/ats-engine/api/http/handlers"
	"github.com/atslens/ats-engine/pkg/analysis"
	"github.com/atslens/ats-engine/pkg/auth"
	"github.com/atslens/ats-engine/pkg/config"
	"github.com/atslens/ats-engine/pkg/health"
	"github.com/atslens/ats-engine/pkg/health/checkers"
	"github.com/atslens/ats-engine/pkg/logger"
	"github.com/atslens/ats-engine/pkg/repository/inmemory"
	pgrepo "github.com/atslens/ats-engine/pkg/repository/postgres"
	"github.com/atslens/ats-engine/pkg/security/jwt"
	"github.com/atslens/ats-engine/pkg/shortlist"
	"github.com/atslens/ats-engine/pkg/storage/postgres"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	maxBytes := int64(cfg.MaxUploadMB) << 20
	app := fiber.New(fiber.Config{
		BodyLimit: int(maxBytes) + (1 << 20), // leave room for the jd_text field
	})

	// Stores: postgres when DATABASE_URL is set, otherwise in-memory users
	// and a JSON file shortlist.
	var userRepo auth.UserRepository
	var shortlistRepo shortlist.Repository
	var readiness health.ReadinessUseCase

	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("postgres connect")
		}
		defer pool.Close()

		pgUsers, err := pgrepo.NewUserRepository(pool)
		if err != nil {
			log.Fatal().Err(err).Msg("init user repo")
		}
		pgShortlist, err := pgrepo.NewShortlistRepository(pool)
		if err != nil {
			log.Fatal().Err(err).Msg("init shortlist repo")
		}
		userRepo = pgUsers
		shortlistRepo = pgShortlist
		readiness = health.NewService(checkers.NewPostgresChecker(pool))
	} else {
		log.Warn().Msg("DATABASE_URL not set, using in-memory users and file shortlist")
		store, err := shortlist.NewFileStore(cfg.ShortlistFile)
		if err != nil {
			log.Fatal().Err(err).Msg("init shortlist file store")
		}
		userRepo = inmemory.NewUserRepository()
		shortlistRepo = store
		readiness = health.NewService(checkers.NewShortlistChecker(store))
	}

	// Token generator and auth
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authUC := auth.NewAuthService(userRepo, jwtGen)
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)

	// Candidate notification: real SMTP only when configured.
	var notifier shortlist.Notifier
	if cfg.SMTPHost != "" && cfg.SMTPFrom != "" {
		notifier = shortlist.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPPassword)
	} else {
		notifier = shortlist.LogNotifier{Log: log}
	}

	analysisUC := analysis.NewService(time.Duration(cfg.AnalysisTimeoutSec)*time.Second, log)
	shortlistUC := shortlist.NewService(shortlistRepo, notifier, log)

	httpapi.Register(app,
		handlers.NewAnalyzeHandler(analysisUC, maxBytes),
		handlers.NewBulkHandler(analysisUC, maxBytes),
		handlers.NewExportHandler(),
		handlers.NewShortlistHandler(shortlistUC),
		handlers.NewAuthHandler(authUC),
		handlers.NewHealthHandler(readiness),
		authMW,
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	log.Info().Str("port", cfg.Port).Msg("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
