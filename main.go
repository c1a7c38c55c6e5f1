package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bakery-service/cache"
	"bakery-service/common/logger"
	"bakery-service/common/middleware"
	"bakery-service/controllers"
	"bakery-service/database"
	"bakery-service/events"
	awspkg "bakery-service/pkg/aws"
	"bakery-service/repository"
	"bakery-service/routes"
	"bakery-service/services"
)

const serviceName = "bakery-service"

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Config load failed: %v", err)
	}

	// --- AWS setup (non-fatal) ---
	var awsCfg *sdkaws.Config
	if c, err := awspkg.LoadAWSConfig(context.Background()); err == nil {
		awsCfg = &c
	}

	// --- Logging ---
	var sink io.Writer
	if cfg.CloudWatchEnabled && awsCfg != nil {
		if w, err := awspkg.NewCloudWatchLogsWriter(context.Background(), *awsCfg, serviceName); err == nil {
			sink = w
		} else {
			log.Printf("CloudWatch Logs writer init failed (non-fatal): %v", err)
		}
	}
	zlog, err := logger.Initialize(cfg.Env, sink)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if awsCfg == nil {
		zlog.Warn("AWS config unavailable, SNS and CloudWatch disabled")
	}

	// --- CloudWatch metrics ---
	var metrics awspkg.MetricsRecorder
	if awsCfg != nil {
		if mc := awspkg.NewMetricsClient(*awsCfg); mc.IsEnabled() {
			metrics = mc
		}
	}

	// --- Database ---
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	mongoDB, err := database.Connect(connectCtx, cfg.DatabaseURL, cfg.DatabaseName)
	cancelConnect()
	if err != nil {
		if mongoDB == nil {
			zlog.Fatal("DB client creation failed", zap.Error(err))
		}
		zlog.Warn("DB ping failed, serving anyway", zap.Error(err))
	} else {
		zlog.Info("Connected to MongoDB", zap.String("database", mongoDB.Name()))
	}

	// --- Redis product cache (optional) ---
	var productCache services.ProductCache
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		rc, err := cache.Connect(context.Background(), cfg.RedisURL)
		if err != nil {
			zlog.Warn("Redis unavailable, product cache disabled", zap.Error(err))
		} else {
			redisClient = rc
			productCache = cache.NewProductCache(rc, cache.DefaultTTL, zlog)
		}
	}

	// --- Event bus ---
	publisher := newPublisher(cfg, awsCfg, zlog)

	// --- Dependency injection ---
	productRepo := repository.NewMongoProductRepository(mongoDB.DB)
	orderRepo := repository.NewMongoOrderRepository(mongoDB.DB)
	paymentRepo := repository.NewMongoPaymentRepository(mongoDB.DB)

	productService := services.NewProductService(productRepo, productCache, metrics, zlog)
	orderService := services.NewOrderService(orderRepo, publisher, metrics, zlog)
	paymentService := services.NewPaymentService(paymentRepo, orderRepo, publisher, metrics, zlog)
	diagnosticsService := services.NewDiagnosticsService(mongoDB, zlog)

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(zlog),
		middleware.Metrics(metrics, serviceName),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMinute),
		middleware.Timeout(30*time.Second),
	)

	routes.RegisterRoutes(r, routes.Controllers{
		Health:   controllers.NewHealthController(diagnosticsService, serviceName),
		Products: controllers.NewProductController(productService),
		Orders:   controllers.NewOrderController(orderService),
		Payments: controllers.NewPaymentController(paymentService),
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		zlog.Info("Bakery Service started", zap.String("port", cfg.Port), zap.String("event_bus", cfg.EventBus))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Initiating graceful shutdown...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Server shutdown error", zap.Error(err))
	}
	if err := publisher.Close(); err != nil {
		zlog.Error("Event publisher close error", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zlog.Error("Redis close error", zap.Error(err))
		}
	}
	if err := mongoDB.Close(shutdownCtx); err != nil {
		zlog.Error("Database close error", zap.Error(err))
	}

	zlog.Info("Bakery Service stopped gracefully")
}

// newPublisher picks the event bus named by EVENT_BUS. Without AWS config
// the SNS bus degrades to a no-op.
func newPublisher(cfg *Config, awsCfg *sdkaws.Config, zlog *zap.Logger) events.Publisher {
	switch cfg.EventBus {
	case EventBusSNS:
		if awsCfg == nil {
			zlog.Warn("EVENT_BUS=sns but AWS config unavailable, events disabled")
			return events.NoopPublisher{}
		}
		return events.NewSNSPublisher(awspkg.NewSNSClient(*awsCfg), cfg.PaymentSNSTopicARN)
	case EventBusKafka:
		return events.NewKafkaProducer(cfg.KafkaBrokers, cfg.PaymentEventsTopic)
	default:
		return events.NoopPublisher{}
	}
}
