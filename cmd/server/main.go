package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/J33rry/predusk/adapters/event"
	httpAdapter "github.com/J33rry/predusk/adapters/http"
	"github.com/J33rry/predusk/adapters/persistence"
	authUC "github.com/J33rry/predusk/internal/application/usecase/auth"
	profileUC "github.com/J33rry/predusk/internal/application/usecase/profile"
	projectUC "github.com/J33rry/predusk/internal/application/usecase/project"
	searchUC "github.com/J33rry/predusk/internal/application/usecase/search"
	skillsUC "github.com/J33rry/predusk/internal/application/usecase/skills"
	"github.com/J33rry/predusk/internal/config"
	"github.com/J33rry/predusk/pkg/auth"
	"github.com/J33rry/predusk/pkg/logger"
	"github.com/J33rry/predusk/pkg/tracing"
)

const topSkillsCacheTTL = 5 * time.Minute

func main() {
	fmt.Println("Starting Predusk API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Tracing is optional; skip when no collector endpoint is configured
	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "predusk-api")
		if err != nil {
			log.Fatalf("FATAL: cannot init tracing: %v", err)
		}
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				log.Printf("ERROR: tracer shutdown: %v", err)
			}
		}()
	}

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		log.Fatalf("FATAL: cannot init Kafka: %v", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	workRepo := persistence.NewPostgresWorkRepo(dbPool, appLogger)
	searchRepo := persistence.NewPostgresSearchRepo(dbPool, appLogger)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	skillsCache := persistence.NewRedisSkillsCache(redisClient, topSkillsCacheTTL, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	createProfileUseCase := profileUC.NewCreateProfileUseCase(profileRepo, projectRepo, workRepo, kafkaClient, skillsCache, appLogger)
	getProfileUseCase := profileUC.NewGetProfileUseCase(profileRepo, projectRepo, workRepo, appLogger)
	listProfilesUseCase := profileUC.NewListProfilesUseCase(profileRepo, projectRepo, workRepo, appLogger)
	updateProfileUseCase := profileUC.NewUpdateProfileUseCase(profileRepo, projectRepo, workRepo, kafkaClient, skillsCache, appLogger)
	deleteProfileUseCase := profileUC.NewDeleteProfileUseCase(profileRepo, kafkaClient, skillsCache, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, appLogger)
	searchUseCase := searchUC.NewSearchUseCase(searchRepo, appLogger)
	topSkillsUseCase := skillsUC.NewTopSkillsUseCase(skillRepo, skillsCache, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, appLogger)
	profileHandler := httpAdapter.NewProfileHandler(
		createProfileUseCase,
		getProfileUseCase,
		listProfilesUseCase,
		updateProfileUseCase,
		deleteProfileUseCase,
		appLogger,
	)
	projectHandler := httpAdapter.NewProjectHandler(listProjectsUseCase, appLogger)
	searchHandler := httpAdapter.NewSearchHandler(searchUseCase, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(topSkillsUseCase, appLogger)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ProfileHandler: profileHandler,
		ProjectHandler: projectHandler,
		SearchHandler:  searchHandler,
		SkillHandler:   skillHandler,
		AuthHandler:    authHandler,
		JWTService:     jwtSvc,
		Logger:         appLogger,
	})

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
