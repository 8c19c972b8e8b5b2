package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mzhuravlev/shop_api/internal/config"
	"github.com/mzhuravlev/shop_api/internal/events"
	"github.com/mzhuravlev/shop_api/internal/httpserver"
	"github.com/mzhuravlev/shop_api/internal/logging"
	loggingmw "github.com/mzhuravlev/shop_api/internal/middleware/logging"
	"github.com/mzhuravlev/shop_api/internal/repo"
	"github.com/mzhuravlev/shop_api/internal/service"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := config.InitDB(initCtx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	if !producer.Enabled() {
		logger.Warn("kafka brokers not configured, events disabled")
	}

	r := &repo.GormRepo{DB: db}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), middleware.CORS())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		UserHandler:    &httpserver.UserHTTP{Svc: &service.UserService{Repo: r}, Producer: producer},
		ProductHandler: &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: r}, Producer: producer},
		CartHandler:    &httpserver.CartHTTP{Svc: &service.CartService{Repo: r}, Producer: producer},
		RatingHandler:  &httpserver.RatingHTTP{Svc: &service.RatingService{Repo: r}, Producer: producer},
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting server", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	}

	if err := producer.Close(); err != nil {
		logger.Error("kafka close error", "error", err)
	}

	logger.Info("shutdown complete")
}
