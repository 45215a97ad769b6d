package app

import (
	"context"
	"log"
	"time"

	"career-canvas/internal/config"
	"career-canvas/internal/database"
	dbpostgres "career-canvas/internal/database/postgres"
	"career-canvas/internal/delivery/http/handler"
	"career-canvas/internal/delivery/http/middleware"
	"career-canvas/internal/infrastructure/ai"
	"career-canvas/internal/infrastructure/cache"
	"career-canvas/internal/infrastructure/media"
	"career-canvas/internal/infrastructure/persistence/postgres"
	"career-canvas/internal/listing"
	"career-canvas/internal/match"
	"career-canvas/internal/pkg/jwt"
	"career-canvas/internal/scheduler"
	"career-canvas/internal/usecase"
	"career-canvas/internal/ws"
)

// Container wires configuration into the full dependency graph. Optional
// backends (Redis, Gemini, the media host) degrade to no-ops when absent;
// Postgres is required.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub

	Jobs         usecase.JobUsecase
	Applications usecase.ApplicationUsecase
	Profiles     usecase.ProfileUsecase
	Matcher      usecase.MatchUsecase
	Assistant    usecase.AssistantUsecase
	Companies    usecase.CompanyUsecase

	Auth      *middleware.AuthMiddleware
	JobsH     *handler.JobsHandler
	UsersH    *handler.UsersHandler
	CompanyH  *handler.CompanyHandler
	WSHandler *ws.Handler
	Scheduler *scheduler.Scheduler
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(logger)

	jwtSvc := jwt.NewHMACService(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)

	jobRepo := postgres.NewJobRepository(db)
	appRepo := postgres.NewApplicationRepository(db)
	userRepo := postgres.NewUserRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)

	var gen match.Generator
	gemini, err := ai.NewGemini(ctx, cfg.AI.GeminiAPIKey, cfg.AI.Model, logger)
	if err != nil {
		logger.Printf("app | gemini unavailable: %v", err)
	} else if gemini != nil {
		gen = gemini
	}
	estimator := match.NewEstimator(gen, cfg.AI.Timeout, logger)

	files := media.NewHTTPStore(cfg.Media.UploadURL, cfg.Media.UploadPreset)

	hub := ws.NewHub(logger)
	notifier := ws.NewNotifier(hub)

	scores := listing.NewScoreSession(uint64(time.Now().UnixNano()))

	jobsUC := usecase.NewJobUsecase(jobRepo, companyRepo, redisCache, scores, logger)
	appsUC := usecase.NewApplicationUsecase(appRepo, jobRepo, notifier, logger)
	profilesUC := usecase.NewProfileUsecase(userRepo, files, logger)
	matchUC := usecase.NewMatchUsecase(userRepo, jobRepo, estimator, logger)
	assistantUC := usecase.NewAssistantUsecase(gen, logger)
	companiesUC := usecase.NewCompanyUsecase(companyRepo, jobRepo, appRepo, jwtSvc, redisCache, logger)

	sched := scheduler.New(jobsUC.SeedJobs, logger)

	return &Container{
		Config: cfg,
		Logger: logger,

		DB:    db,
		Cache: redisCache,
		Hub:   hub,

		Jobs:         jobsUC,
		Applications: appsUC,
		Profiles:     profilesUC,
		Matcher:      matchUC,
		Assistant:    assistantUC,
		Companies:    companiesUC,

		Auth:      middleware.NewAuthMiddleware(jwtSvc),
		JobsH:     handler.NewJobsHandler(jobsUC),
		UsersH:    handler.NewUsersHandler(profilesUC, appsUC, matchUC, assistantUC),
		CompanyH:  handler.NewCompanyHandler(companiesUC),
		WSHandler: ws.NewHandler(hub, jwtSvc, logger),
		Scheduler: sched,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
