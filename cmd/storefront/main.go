package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	cartapp "github.com/olaria/storefront/internal/cart/application"
	cartdomain "github.com/olaria/storefront/internal/cart/domain"
	"github.com/olaria/storefront/internal/cart/infrastructure/messaging"
	cartmysql "github.com/olaria/storefront/internal/cart/infrastructure/persistence/mysql"
	carthttp "github.com/olaria/storefront/internal/cart/interfaces/http"
	catalogapp "github.com/olaria/storefront/internal/catalog/application"
	catalogdomain "github.com/olaria/storefront/internal/catalog/domain"
	catalogmysql "github.com/olaria/storefront/internal/catalog/infrastructure/persistence/mysql"
	"github.com/olaria/storefront/internal/catalog/infrastructure/seed"
	cataloghttp "github.com/olaria/storefront/internal/catalog/interfaces/http"
	contactapp "github.com/olaria/storefront/internal/contact/application"
	contactdomain "github.com/olaria/storefront/internal/contact/domain"
	contactmysql "github.com/olaria/storefront/internal/contact/infrastructure/persistence/mysql"
	contacthttp "github.com/olaria/storefront/internal/contact/interfaces/http"
	sessionredis "github.com/olaria/storefront/internal/session/infrastructure/persistence/redis"
	sessionhttp "github.com/olaria/storefront/internal/session/interfaces/http"
	"github.com/olaria/storefront/pkg/cache"
	"github.com/olaria/storefront/pkg/config"
	"github.com/olaria/storefront/pkg/db"
	"github.com/olaria/storefront/pkg/logger"
	"github.com/olaria/storefront/pkg/metrics"
	"github.com/olaria/storefront/pkg/middleware"
	"github.com/olaria/storefront/pkg/mq"
)

var configPath = flag.String("config", "configs/storefront/config.toml", "config file path")

func main() {
	flag.Parse()

	var cfg config.Config
	if err := config.Load(*configPath, &cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Logger); err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	metricsImpl := metrics.New(cfg.ServiceName)

	gormDB, err := db.Init(db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogEnabled:      cfg.Database.LogEnabled,
	})
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	if cfg.Environment == "dev" {
		if err := gormDB.AutoMigrate(
			&catalogdomain.Product{},
			&cartdomain.CartItem{},
			&contactdomain.Message{},
		); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}
	if cfg.Catalog.Seed {
		if err := seed.Run(context.Background(), gormDB); err != nil {
			slog.Error("failed to seed catalog", "error", err)
			os.Exit(1)
		}
	}

	redisClient, err := cache.New(cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		slog.Error("failed to connect redis", "error", err)
		os.Exit(1)
	}
	sessionStore := sessionredis.NewSessionStore(redisClient)

	var publisher cartdomain.EventPublisher = messaging.NewNoopPublisher()
	var producer *mq.Producer
	if cfg.Kafka.Enabled {
		producer = mq.NewProducer(mq.Config{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		publisher = messaging.NewKafkaPublisher(producer, cfg.Kafka.Topic)
	}

	productRepo := catalogmysql.NewProductRepository(gormDB)
	cartRepo := cartmysql.NewCartRepository(gormDB)
	contactRepo := contactmysql.NewMessageRepository(gormDB)

	catalogSvc := catalogapp.NewCatalogQueryService(productRepo)
	cartSvc := cartapp.NewCartService(cartRepo, productRepo, publisher)
	contactSvc := contactapp.NewContactService(contactRepo)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.Metrics(metricsImpl),
		gin.Recovery(),
	)

	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(metricsImpl.Handler()))
	}

	api := r.Group("/api")
	api.Use(sessionhttp.Resolve(sessionStore, sessionhttp.Config{
		CookieName: cfg.Session.CookieName,
		TTL:        time.Duration(cfg.Session.TTLHours) * time.Hour,
		Secure:     cfg.Session.Secure,
	}))
	cataloghttp.NewHandler(catalogSvc).RegisterRoutes(api)
	carthttp.NewHandler(cartSvc, metricsImpl).RegisterRoutes(api)
	contacthttp.NewHandler(contactSvc, metricsImpl).RegisterRoutes(api)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}

	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		slog.Info("HTTP server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			slog.Info("shutting down...")
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
		if producer != nil {
			if err := producer.Close(); err != nil {
				slog.Error("kafka producer close failed", "error", err)
			}
		}
		return redisClient.Close()
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
