package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"transcriptai/internal/ai"
	appsvc "transcriptai/internal/app"
	"transcriptai/internal/bootstrap"
	"transcriptai/internal/cache"
	"transcriptai/internal/mailer"
	rabbitmqClient "transcriptai/internal/platform/rabbitmq"
	"transcriptai/internal/repository"
	"transcriptai/internal/transport/http/handler"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.LoadHTMLGlob(app.Config.App.TemplatesDir + "/*.html")

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	transcriptRepo := repository.NewTranscriptRepository(app.MySQL)
	transcriptCache := cache.NewTranscriptCache(
		app.Redis,
		time.Duration(app.Config.Redis.TranscriptTTLSeconds)*time.Second,
	)
	sharePublisher := rabbitmqClient.NewSharePublisher(app.MQConn, app.Config.RabbitMQ.ShareLogQueue)
	smtpMailer := mailer.NewSMTPMailer(
		app.Config.SMTP.Host,
		app.Config.SMTP.Port,
		app.Config.SMTP.Username,
		app.Config.SMTP.Password,
		app.Config.SMTP.From,
	)

	summaryService := appsvc.NewSummaryService(
		transcriptRepo,
		ai.NewOpenAICompatibleClient(),
		smtpMailer,
		transcriptCache,
		sharePublisher,
		ai.ChatConfig{
			BaseURL: app.Config.LLM.BaseURL,
			APIKey:  app.Config.LLM.APIKey,
			Model:   app.Config.LLM.Model,
		},
		mailer.BuildSummaryHTML,
		app.Logger,
	)

	homeHandler := handler.NewHomeHandler(summaryService, app.Logger)
	summaryHandler := handler.NewSummaryHandler(summaryService, app.Logger)

	router.GET("/", homeHandler.Page)
	router.POST("/", homeHandler.Upload)
	router.Any("/summary/*path", summaryHandler.Dispatch)

	return router
}
