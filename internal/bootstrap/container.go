package bootstrap

import (
	"course-mentor-be/internal/config"
	"course-mentor-be/internal/controller"
	"course-mentor-be/internal/pkg/logger"
	"course-mentor-be/internal/repository/implementation"
	"course-mentor-be/internal/repository/memory"
	"course-mentor-be/internal/service"
	"course-mentor-be/pkg/enrich"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

// Container wires the whole dependency graph once at startup.
type Container struct {
	Logger          logger.ILogger
	ChatController  controller.IChatController
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	courseRepo := implementation.NewCourseRepository(db)
	sessionRepo := memory.NewSessionRepository()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.TurnTopic, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.TurnTopic, sysLogger)

	var enricher enrich.Enricher = enrich.NoopEnricher{}
	if cfg.Ai.UseLLM && cfg.Keys.GoogleGemini != "" {
		enricher = enrich.NewGeminiEnricher(cfg.Keys.GoogleGemini, cfg.Ai.GeminiModel)
		sysLogger.Info("Bootstrap", "reply enrichment enabled", map[string]interface{}{
			"model": cfg.Ai.GeminiModel,
		})
	}

	chatService := service.NewChatService(
		courseRepo,
		sessionRepo,
		enricher,
		publisherService,
		sysLogger,
		cfg.Engine.QueryTimeout,
		cfg.Engine.EnrichTimeout,
	)

	return &Container{
		Logger:          sysLogger,
		ChatController:  controller.NewChatController(chatService),
		ConsumerService: consumerService,
	}
}
