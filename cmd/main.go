package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/quizzyhq/quizzy-core/config"
	"github.com/quizzyhq/quizzy-core/database"
	_ "github.com/quizzyhq/quizzy-core/docs" // Swagger docs
	platformctrl "github.com/quizzyhq/quizzy-core/internal/controller/platform"
	userctrl "github.com/quizzyhq/quizzy-core/internal/controller/user"
	"github.com/quizzyhq/quizzy-core/internal/logger"
	"github.com/quizzyhq/quizzy-core/internal/middleware"
	"github.com/quizzyhq/quizzy-core/internal/model"
	"github.com/quizzyhq/quizzy-core/internal/notifier"
	"github.com/quizzyhq/quizzy-core/internal/repository"
	"github.com/quizzyhq/quizzy-core/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Quizzy Core API
// @version 1.0
// @description Multi-tenant assessment engine: authoring, entitlements, candidate sessions and response recording.
// @contact.name API Support
// @contact.email support@quizzyhq.com
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			NewNotifier,
			service.NewSystemClock,
		),

		fx.Provide(
			repository.NewPlatformRepository,
			repository.NewAppDefaultRepository,
			repository.NewAssessmentRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewLogRepository,
			repository.NewUserAnswerRepository,
		),

		fx.Provide(
			service.NewCatalog,
			service.NewEntitlementService,
			service.NewAssessmentService,
			service.NewQuestionService,
			service.NewAnswerService,
			service.NewLogService,
			service.NewUserAnswerService,
		),

		fx.Provide(
			platformctrl.NewAssessmentController,
			platformctrl.NewQuestionController,
			platformctrl.NewAnswerController,
			userctrl.NewLogController,
			userctrl.NewUserAnswerController,
		),

		// Migrations must run before the catalogue loads and routes go live.
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Platform-ID", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewNotifier connects to RabbitMQ when a broker URL is configured and falls
// back to log-only auditing otherwise. A connect failure at startup is also a
// fallback, not a fatal error.
func NewNotifier(cfg *config.Config) notifier.Notifier {
	if cfg.AMQP.URL == "" {
		log.Info().Msg("No AMQP URL configured, audit events go to the log")
		return notifier.NewLogNotifier()
	}
	n, err := notifier.NewAMQPNotifier(cfg.AMQP.URL, cfg.AMQP.Queue)
	if err != nil {
		log.Warn().Err(err).Msg("RabbitMQ unavailable, audit events go to the log")
		return notifier.NewLogNotifier()
	}
	return n
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	assessmentCtrl *platformctrl.AssessmentController,
	questionCtrl *platformctrl.QuestionController,
	answerCtrl *platformctrl.AnswerController,
	logCtrl *userctrl.LogController,
	userAnswerCtrl *userctrl.UserAnswerController,
) {
	// Platform (authoring) routes
	platformGroup := router.Group("/api/v1/platform", middleware.RequirePlatform())
	{
		assessments := platformGroup.Group("/assessments")
		assessments.POST("", assessmentCtrl.CreateAssessment)
		assessments.GET("", assessmentCtrl.GetAllAssessments)
		assessments.GET("/:assessment_id", assessmentCtrl.GetAssessment)
		assessments.PUT("/:assessment_id", assessmentCtrl.UpdateAssessment)
		assessments.DELETE("/:assessment_id", assessmentCtrl.DeleteAssessment)
		assessments.DELETE("/:assessment_id/purge", assessmentCtrl.PurgeAssessment)

		questions := assessments.Group("/:assessment_id/questions")
		questions.POST("", questionCtrl.AddQuestion)
		questions.GET("", questionCtrl.GetAllQuestions)
		questions.PUT("/:question_id", questionCtrl.UpdateQuestion)
		questions.PUT("/:question_id/reorder", questionCtrl.ReorderQuestion)
		questions.DELETE("/:question_id", questionCtrl.RemoveQuestion)

		answers := questions.Group("/:question_id/answers")
		answers.POST("", answerCtrl.AddAnswer)
		answers.GET("", answerCtrl.GetAllAnswers)
		answers.PUT("/:answer_id", answerCtrl.UpdateAnswer)
		answers.PUT("/:answer_id/criteria", answerCtrl.UpdateCriteria)
		answers.PUT("/:answer_id/reorder", answerCtrl.ReorderAnswer)
		answers.DELETE("/:answer_id", answerCtrl.RemoveAnswer)
	}

	// Candidate routes
	userGroup := router.Group("/api/v1", middleware.RequireUser())
	{
		userGroup.GET("/assessments/:identifier", logCtrl.ViewAssessment)
		userGroup.POST("/assessments/:identifier/start", logCtrl.StartAssessment)

		userGroup.GET("/sessions", logCtrl.GetAllLogs)
		userGroup.GET("/sessions/:reference", logCtrl.GetLog)
		userGroup.POST("/sessions/:reference/end", logCtrl.EndAssessment)
		userGroup.GET("/sessions/:reference/answers", userAnswerCtrl.GetAllAnswers)
		userGroup.POST("/sessions/:reference/answers", userAnswerCtrl.RecordAnswer)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quizzy Core API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Platform{},
		&model.Assessment{},
		&model.Question{},
		&model.Answer{},
		&model.AssessmentLog{},
		&model.UserAnswer{},
		&model.AppDefault{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
