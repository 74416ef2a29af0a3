package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"room-booking-api/core/cache"
	"room-booking-api/core/config"
	"room-booking-api/core/constants"
	"room-booking-api/core/database"
	"room-booking-api/core/logger"
	"room-booking-api/core/middleware"
	"room-booking-api/core/queue"
	"room-booking-api/modules/auth"
	authrepo "room-booking-api/modules/auth/repository"
	authservice "room-booking-api/modules/auth/service"
	"room-booking-api/modules/booking"
	bookingrepo "room-booking-api/modules/booking/repository"
	"room-booking-api/modules/calendarhint"
	"room-booking-api/modules/notification"
	notificationrepo "room-booking-api/modules/notification/repository"
	"room-booking-api/modules/room"
	roomrepo "room-booking-api/modules/room/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run boots the API: config, logging, storage, cache, background queue,
// then the HTTP surface. Blocks until SIGINT/SIGTERM.
func Run() error {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to init database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()
	if err := authrepo.InitSchema(ctx, &db); err != nil {
		return fmt.Errorf("failed to init users schema: %w", err)
	}
	if err := roomrepo.InitSchema(ctx, &db); err != nil {
		return fmt.Errorf("failed to init rooms schema: %w", err)
	}
	if err := bookingrepo.InitSchema(ctx, &db); err != nil {
		return fmt.Errorf("failed to init bookings schema: %w", err)
	}
	if err := notificationrepo.InitSchema(ctx, &db); err != nil {
		return fmt.Errorf("failed to init notifications schema: %w", err)
	}

	cacheClient, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to init cache: %w", err)
	}
	defer cacheClient.Close()

	q := queue.NewQueue(cfg.Redis)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("Request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	// Auth service doubles as the middleware's token validator, so it
	// is built before everything that registers private routes.
	authSvc := authservice.NewAuthService(authrepo.NewUserRepository(&db), cacheClient)
	mw := middleware.NewMiddleware(authSvc)

	auth.Init(e, authSvc, mw)
	roomSvc := room.Init(e, &db, mw)
	notifier := notification.Init(e, &db, q, mw)
	booking.Init(e, &db, roomSvc, cacheClient, notifier, q, mw)
	calendarhint.Init(e, mw)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	if err := q.Start(); err != nil {
		return fmt.Errorf("failed to start queue: %w", err)
	}
	defer q.Shutdown()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start", "error", err)
		}
	}()
	logger.Info("Server:Run:Started", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server:Run:ShuttingDown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
