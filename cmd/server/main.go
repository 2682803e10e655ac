package main

import (
	"context"
	"log"
	"time"

	"shop-service/internal/config"
	httpctrl "shop-service/internal/controllers/http"
	"shop-service/internal/controllers/ws"
	"shop-service/internal/infra/cache"
	"shop-service/internal/infra/mailer"
	mmysql "shop-service/internal/infra/mysql"
	"shop-service/internal/infra/pdf"
	"shop-service/internal/infra/rabbitmq"
	mysqlrepo "shop-service/internal/repository/mysql"
	"shop-service/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	cfg := config.Load()

	db, err := mmysql.New(cfg.MySQL)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	orderRepo := mysqlrepo.NewOrderRepository(db)
	productRepo := mysqlrepo.NewProductRepository(db)
	inquiryRepo := mysqlrepo.NewInquiryRepository(db)
	policyRepo := mysqlrepo.NewPolicyRepository(db)
	userRepo := mysqlrepo.NewUserRepository(db)

	var publisher rabbitmq.PublisherInterface
	if cfg.RabbitMQURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, "shop.exchange")
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer pub.Close()
		publisher = pub
	} else {
		log.Println("RABBITMQ_URL not set, order events disabled")
	}

	mail := mailer.New(cfg)
	renderer := pdf.NewRenderer(cfg.InvoiceFontPath)

	orderSvc := services.NewOrderService(orderRepo, publisher, renderer, mail)
	productSvc := services.NewProductService(productRepo)
	inquirySvc := services.NewInquiryService(inquiryRepo, mail, cfg.ShopName)
	policySvc := services.NewPolicyService(policyRepo)
	authSvc := services.NewAuthService(userRepo, cfg.SessionSecret, cfg.AdminEmail, cfg.AdminPassword)
	dashboardSvc := services.NewDashboardService(productRepo, orderRepo, inquiryRepo)

	notifier := services.NewNotifier(orderRepo, mail, renderer, cfg.ShopName)
	notifier.Start()
	defer notifier.Stop()
	orderSvc.SetNotifier(notifier)

	hub := ws.NewHub()
	orderSvc.SetBroadcaster(hub)

	if cfg.RedisHost != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisHost + ":6379",
			DB:           0,
			PoolSize:     50,
			MinIdleConns: 10,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		productCache := cache.NewProductCache(redisClient)
		productSvc.SetProductCache(productCache)
		orderSvc.SetProductCache(productCache)

		go func() {
			time.Sleep(5 * time.Second)
			if err := productSvc.WarmupCache(context.Background()); err != nil {
				log.Printf("Failed to warm up product cache: %v", err)
			} else {
				log.Println("Product cache warmed up")
			}
		}()
	}

	handler := httpctrl.NewHandler(orderSvc, productSvc, inquirySvc, policySvc, authSvc, dashboardSvc, hub)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.RegisterRoutes(r)

	log.Printf("Starting shop service on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
