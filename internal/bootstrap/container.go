package bootstrap

import (
	"context"
	"log"

	"agri-solve-be/internal/config"
	"agri-solve-be/internal/controller"
	"agri-solve-be/internal/pkg/logger"
	"agri-solve-be/internal/pkg/mailer"
	"agri-solve-be/internal/repository/memory"
	"agri-solve-be/internal/repository/unitofwork"
	"agri-solve-be/internal/service"
	"agri-solve-be/pkg/ai"
	"agri-solve-be/pkg/ai/gateway"
	"agri-solve-be/pkg/storage"

	pktNats "agri-solve-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ScanRecordedTopic is the in-process bus topic between the scan service
// and the stats consumer.
const ScanRecordedTopic = "SCAN_RECORDED"

type Container struct {
	// Controllers
	AuthController  controller.IAuthController
	OAuthController controller.IOAuthController
	UserController  controller.IUserController
	ScanController  controller.IScanController
	ShopController  controller.IShopController
	StatsController controller.IStatsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	ShopService     service.IShopService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// S3 image storage (optional; scans still save without image URLs)
	var imageStore *storage.ImageStore
	if cfg.AWS.S3Bucket != "" {
		imageStore, err = storage.NewImageStore(
			context.Background(),
			cfg.AWS.Region,
			cfg.AWS.S3Bucket,
			cfg.AWS.AccessKeyId,
			cfg.AWS.SecretAccessKey,
		)
		if err != nil {
			log.Printf("[WARN] Failed to initialize S3 image store: %v", err)
			imageStore = nil
		}
	} else {
		log.Printf("[WARN] AWS_S3_BUCKET not set, image uploads disabled")
	}

	// AI diagnosis provider
	var aiProvider ai.Provider = gateway.NewGatewayProvider(
		cfg.Ai.GatewayBaseURL,
		cfg.Ai.GatewayAPIKey,
		cfg.Ai.Model,
	)

	// In-memory session storage
	sessionRepo := memory.NewSessionRepository()

	// 3. Services
	publisherService := service.NewPublisherService(ScanRecordedTopic, pubSub)

	// Stats Consumer Worker
	consumerLogger := logger.NewIsolatedLogger("logs/consumer.log")
	consumerService := service.NewConsumerService(
		pubSub,
		ScanRecordedTopic,
		uowFactory,
		consumerLogger,
	)

	sessionService := service.NewSessionService(sessionRepo, uowFactory, sysLogger)
	authService := service.NewAuthService(uowFactory, emailService, sessionService, natsPub)
	oauthService := service.NewOAuthService(uowFactory, sessionService, cfg)
	userService := service.NewUserService(uowFactory, sessionService, imageStore)

	scanService := service.NewScanService(
		uowFactory,
		aiProvider,
		sessionService,
		imageStore,
		publisherService,
		natsPub,
		sysLogger,
	)

	shopService := service.NewShopService(uowFactory, rdb, sysLogger)
	statsService := service.NewStatsService(uowFactory)

	// 4. Controllers
	return &Container{
		AuthController:  controller.NewAuthController(authService),
		OAuthController: controller.NewOAuthController(oauthService),
		UserController:  controller.NewUserController(userService, sessionService),
		ScanController:  controller.NewScanController(scanService),
		ShopController:  controller.NewShopController(shopService, sessionService),
		StatsController: controller.NewStatsController(statsService),

		ConsumerService: consumerService,
		ShopService:     shopService,
	}
}
