package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ShambaQuest/config"
	"github.com/lshigami/ShambaQuest/database"
	_ "github.com/lshigami/ShambaQuest/docs"
	adminctrl "github.com/lshigami/ShambaQuest/internal/controller/admin"
	userctrl "github.com/lshigami/ShambaQuest/internal/controller/user"
	"github.com/lshigami/ShambaQuest/internal/logger"
	"github.com/lshigami/ShambaQuest/internal/observability"
	"github.com/lshigami/ShambaQuest/internal/repository"
	"github.com/lshigami/ShambaQuest/internal/router"
	"github.com/lshigami/ShambaQuest/internal/scheduler"
	"github.com/lshigami/ShambaQuest/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title ShambaQuest API
// @version 1.0
// @description Climate-smart farming quiz: answer scoring, XP, levels, badges and leaderboard.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			router.NewGinEngine,
		),

		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewProfileRepository,
			repository.NewBadgeRepository,
		),

		fx.Provide(
			service.NewAnswerEvaluator,
			service.NewBadgeAwarder,
			service.NewLeaderboardCache,
			service.NewLeaderboardService,
			service.NewQuizSubmissionService,
			service.NewQuestionService,
			service.NewQuestionImportService,
			service.NewProfileService,
			scheduler.New,
		),

		fx.Provide(
			userctrl.NewQuizController,
			userctrl.NewProfileController,
			adminctrl.NewAdminQuestionController,
		),

		// Order matters: tables and the badge catalog exist before traffic.
		fx.Invoke(StartTracing),
		fx.Invoke(database.AutoMigrate),
		fx.Invoke(SeedBadgeCatalog),
		fx.Invoke(router.Register),
		fx.Invoke(StartScheduler),
		fx.Invoke(StartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stop failed")
	}
}

func StartTracing(lc fx.Lifecycle, cfg *config.Config) error {
	shutdown, err := observability.InitTracing(cfg)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{OnStop: shutdown})
	return nil
}

func SeedBadgeCatalog(awarder service.BadgeAwarder) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return awarder.SeedCatalog(ctx)
}

func StartScheduler(lc fx.Lifecycle, s *scheduler.Scheduler, leaderboard service.LeaderboardService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Warm the cache once so the first leaderboard read is not empty.
			if err := leaderboard.Resync(ctx); err != nil {
				log.Warn().Err(err).Msg("Initial leaderboard resync failed")
			}
			return s.Start()
		},
		OnStop: func(context.Context) error {
			s.Stop()
			return nil
		},
	})
}

func StartServer(lc fx.Lifecycle, r *gin.Engine, cfg *config.Config, db *gorm.DB) {
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("ShambaQuest API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			if err := server.Shutdown(ctx); err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				return sqlDB.Close()
			}
			return nil
		},
	})
}
