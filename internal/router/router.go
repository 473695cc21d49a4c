package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/ShambaQuest/config"
	"github.com/lshigami/ShambaQuest/internal/controller"
	adminctrl "github.com/lshigami/ShambaQuest/internal/controller/admin"
	userctrl "github.com/lshigami/ShambaQuest/internal/controller/user"
	"github.com/lshigami/ShambaQuest/internal/middleware"
	"github.com/lshigami/ShambaQuest/internal/observability"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

// NewGinEngine builds the engine with request logging, recovery, tracing and
// CORS. Routes are added by Register.
func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(observability.ServiceName))

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.Server.CORSAllowedOrigins) == 0 || cfg.Server.CORSAllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Server.CORSAllowedOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

// Register mounts the API under /api/v1 and the health probe at the root.
func Register(
	r *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	quizCtrl *userctrl.QuizController,
	profileCtrl *userctrl.ProfileController,
	adminQuestionCtrl *adminctrl.AdminQuestionController,
) {
	r.GET("/healthz", controller.Health(db))

	api := r.Group("/api/v1", middleware.JWTAuth(cfg))
	{
		api.POST("/quiz/submit", quizCtrl.SubmitAnswer)
		api.GET("/quiz/attempts/:attempt_id", quizCtrl.GetAttempt)

		api.GET("/questions", quizCtrl.ListQuestions)
		api.GET("/questions/:question_id", quizCtrl.GetQuestion)

		api.GET("/profile", profileCtrl.GetProfile)
		api.PUT("/profile/onboarding", profileCtrl.CompleteOnboarding)
		api.GET("/profile/dashboard", profileCtrl.GetDashboard)
		api.GET("/profile/badges", profileCtrl.GetBadges)

		api.GET("/leaderboard", profileCtrl.GetLeaderboard)
	}

	admin := api.Group("/admin", middleware.RequireAdmin(cfg))
	{
		admin.POST("/questions", adminQuestionCtrl.CreateQuestion)
		admin.POST("/questions/import", adminQuestionCtrl.ImportQuestions)
	}
}
