package main

// @title           Mini ERP Cafe API
// @version         1.0
// @description     Back office service for a small cafe: menu, users, orders and order analytics.
// @contact.name    API Support
// @license.name    MIT
// @host      localhost:8000
// @BasePath  /
// @securityDefinitions.basic  BasicAuth

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"gorm.io/gorm"

	_ "github.com/avelichko/mini-erp-cafe/docs"
	"github.com/avelichko/mini-erp-cafe/internal/config"
	healthhandler "github.com/avelichko/mini-erp-cafe/internal/server/health/handler"
	menuhandler "github.com/avelichko/mini-erp-cafe/internal/server/menu/handler"
	ordershandler "github.com/avelichko/mini-erp-cafe/internal/server/orders/handler"
	usershandler "github.com/avelichko/mini-erp-cafe/internal/server/users/handler"
	authentication "github.com/avelichko/mini-erp-cafe/pkg/auth"
	"github.com/avelichko/mini-erp-cafe/pkg/cache"
	"github.com/avelichko/mini-erp-cafe/pkg/database"
	"github.com/avelichko/mini-erp-cafe/pkg/deps"
	"github.com/avelichko/mini-erp-cafe/pkg/logger"
	"github.com/avelichko/mini-erp-cafe/pkg/middleware"
	"github.com/avelichko/mini-erp-cafe/pkg/poll"
	"github.com/avelichko/mini-erp-cafe/pkg/pubsub"
	"github.com/avelichko/mini-erp-cafe/pkg/retry"
)

func main() {
	log, err := logger.NewLoggerFromEnv("server")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting cafe server")

	cfg, err := config.LoadServerConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	log.Info("configuration loaded",
		logger.String("server_addr", cfg.ServerAddr),
		logger.Bool("redis_configured", cfg.RedisURL != ""),
		logger.Duration("menu_cache_ttl", cfg.MenuCacheTTL),
	)

	auth := middleware.SetBasicAuth(&authentication.BasicAuthConfig{
		StaffUsername: cfg.StaffUsername,
		StaffPassword: cfg.StaffPassword,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	})
	mid := middleware.NewAuthMiddleware(auth)
	log.Info("authentication initialized")

	var db *gorm.DB
	err = retry.WithExponentialBackoff(context.Background(), retry.Config{
		MaxRetries:     5,
		InitialBackoff: 1 * time.Second,
		MaxBackoff:     10 * time.Second,
		Multiplier:     2.0,
		Jitter:         true,
	}, func(ctx context.Context) error {
		var openErr error
		db, openErr = database.NewPostgresDB(cfg.DatabaseURL)
		return openErr
	})
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	log.Info("database initialized")

	if err := database.RunMigrations(db); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}
	log.Info("database migrations applied successfully")

	if err := database.SeedInitialData(db); err != nil {
		log.WithError(err).Fatal("failed to seed initial data")
	}

	app := fiber.New(fiber.Config{
		AppName:               "Mini ERP Cafe",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.CanonicalLoggerMiddleware(log))

	d := deps.App{
		Fiber:      app,
		Database:   db,
		Logger:     log,
		Middleware: mid,
		Poller:     poll.NewPoller(log),
	}

	if cfg.RedisURL != "" {
		menuCache, err := cache.NewRedisCache(cfg.RedisURL, log)
		if err != nil {
			log.WithError(err).Error("failed to initialize Redis cache, continuing in DB-only mode",
				logger.String("impact", "menu_served_from_database"))
		} else {
			d.Cache = menuCache
			log.Info("redis menu cache initialized")
			defer menuCache.Close()
		}

		redisPub, err := pubsub.NewRedisPubSub(cfg.RedisURL, log)
		if err != nil {
			log.WithError(err).Error("failed to initialize Redis pub/sub, order events disabled",
				logger.String("impact", "no_order_event_notifications"))
		} else {
			d.Pub = redisPub
			log.Info("redis pub/sub initialized",
				logger.String("channel", cfg.OrderEventsChannel))
			defer redisPub.Close()
		}
	} else {
		log.Info("no Redis configuration provided; cache and order events disabled")
	}

	healthhandler.NewHandler(d)
	usershandler.NewHandler(d)
	menuhandler.NewHandler(d, cfg)
	ordershandler.NewHandler(d, cfg)

	app.Get("/swagger/*", swagger.HandlerDefault)

	ctx, cancel := context.WithCancel(context.Background())
	gErr, gCtx := errgroup.WithContext(ctx)

	if err := d.Poller.Start(gCtx); err != nil {
		log.WithError(err).Fatal("failed to start background poller")
	}

	gErr.Go(func() error {
		log.Info("cafe server is running", logger.String("address", cfg.ServerAddr))
		if err := app.Listen(cfg.ServerAddr); err != nil {
			cancel()
			return err
		}
		return nil
	})

	gErr.Go(func() error {
		<-gCtx.Done()

		if err := d.Poller.Stop(); err != nil {
			log.WithError(err).Error("failed to stop background poller")
		}

		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("failed to shutdown fiber app")
			return err
		}

		conn, err := db.DB()
		if err != nil {
			log.WithError(err).Error("failed to get database connection")
			return err
		}
		if err := conn.Close(); err != nil {
			log.WithError(err).Error("failed to close database")
			return err
		}

		return nil
	})

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		log.Info("listening for shutdown signals")
		<-sigChan
		log.Info("shutdown signal received")
		cancel()
	}()

	if err := gErr.Wait(); err != nil {
		log.WithError(err).Fatal("cafe server encountered an error")
	}

	log.Info("cafe server stopped gracefully")
}
