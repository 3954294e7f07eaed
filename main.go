package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gpu-reserve-go/aiclient"
	"github.com/linskybing/gpu-reserve-go/config"
	"github.com/linskybing/gpu-reserve-go/db"
	"github.com/linskybing/gpu-reserve-go/handlers"
	"github.com/linskybing/gpu-reserve-go/middleware"
	"github.com/linskybing/gpu-reserve-go/minio"
	"github.com/linskybing/gpu-reserve-go/notify"
	"github.com/linskybing/gpu-reserve-go/queue"
	"github.com/linskybing/gpu-reserve-go/repositories"
	"github.com/linskybing/gpu-reserve-go/routes"
	"github.com/linskybing/gpu-reserve-go/services"
	"github.com/redis/go-redis/v9"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()

	deps := services.Deps{
		Interpreter: aiclient.New(),
		Publisher:   queue.NoopPublisher{},
		Notifier:    notify.NoopNotifier{},
		Archiver:    minio.NoopArchiver{},
		CacheTTL:    config.CatalogCacheTTL,
	}

	if config.KafkaBrokers != "" {
		publisher := queue.NewKafkaPublisher(config.KafkaBrokers, config.KafkaTopic)
		defer publisher.Close()
		deps.Publisher = publisher
	}

	hub := notify.NewHub()
	deps.Notifier = hub

	if config.MinioEndpoint != "" {
		minio.InitMinio()
		deps.Archiver = minio.BucketArchiver{}
	}

	if config.RedisAddr != "" {
		deps.Cache = redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	}

	repos := repositories.New()
	svc := services.New(repos, deps)

	if config.ServerCatalogPath != "" {
		if err := svc.Server.SeedFromYAML(config.ServerCatalogPath); err != nil {
			log.Printf("Warning: server catalog seed failed: %v", err)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(router, handlers.New(svc, hub))

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
