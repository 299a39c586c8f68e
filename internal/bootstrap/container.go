package bootstrap

import (
	"context"
	"log"
	"time"

	"airline-support-be/internal/config"
	"airline-support-be/internal/controller"
	"airline-support-be/internal/pkg/logger"
	"airline-support-be/internal/repository/unitofwork"
	"airline-support-be/internal/service"
	"airline-support-be/pkg/llm/factory"
	"airline-support-be/pkg/lock"
	pkgNats "airline-support-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	CustomerController controller.ICustomerController
	AirlineController  controller.IAirlineController
	AdminController    controller.IAdminController

	ConsumerService service.IConsumerService
	Logger          logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Infrastructure
	uowFactory := unitofwork.NewRepositoryFactory(db)

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	wmLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, wmLogger)

	// LLM provider (drives classification and free-form replies)
	log.Printf("[INFO] LLM provider: %s (model: %s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("Failed to initialize LLM provider: %v", err)
	}

	// NATS (optional; turn and cancellation events are best-effort)
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Redis (optional; session locks degrade to always-grant without it)
	var rdb *redis.Client
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb = redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	sessionLocker := lock.NewSessionLocker(rdb, time.Duration(cfg.App.SessionLockTTLSecs)*time.Second)

	// 2. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.TurnTopicName)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.TurnTopicName, natsPub, sysLogger)

	intentService := service.NewIntentService(llmProvider, sysLogger)
	airlineService := service.NewAirlineService(uowFactory, natsPub, sysLogger)
	policyService := service.NewPolicyService(uowFactory, sysLogger)

	if err := policyService.SeedDefaults(context.Background()); err != nil {
		log.Printf("[WARN] Failed to seed default policies: %v", err)
	}

	orchestratorService := service.NewOrchestratorService(
		uowFactory,
		intentService,
		airlineService,
		policyService,
		sessionLocker,
		publisherService,
		sysLogger,
	)

	adminService := service.NewAdminService(uowFactory, sysLogger)

	// 3. Controllers
	customerController := controller.NewCustomerController(orchestratorService)
	airlineController := controller.NewAirlineController(airlineService)
	adminController := controller.NewAdminController(adminService, policyService)

	return &Container{
		CustomerController: customerController,
		AirlineController:  airlineController,
		AdminController:    adminController,
		ConsumerService:    consumerService,
		Logger:             sysLogger,
	}
}
