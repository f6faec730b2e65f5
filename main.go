package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homehero/config"
	"homehero/database"
	bookingRepoPkg "homehero/database/repository/booking"
	serviceRepoPkg "homehero/database/repository/service"
	"homehero/handlers"
	"homehero/middleware"
	"homehero/routes"
	"homehero/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLogger(cfg.IsProduction())

	err := run(cfg, logger)
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, cols, err := database.Connect(ctx, cfg.MongoURI, cfg.DatabaseName)
	cancel()
	if err != nil {
		logger.Error("Failed to connect to MongoDB", zap.Error(err))
		return err
	}
	defer client.Disconnect(context.Background())
	logger.Info("Connected to MongoDB successfully")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	// Repositories.
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo(cols.Services)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(cols.Bookings)

	// Handlers.
	handlerSet := &routes.Handlers{
		Service: handlers.NewServiceHandler(serviceRepo, logger),
		Booking: handlers.NewBookingHandler(bookingRepo, logger),
		Health:  handlers.NewHealthHandler(client),
	}
	routes.RegisterRoutes(router, handlerSet)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for an OS signal or a server failure, then shut down.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("Server failed", zap.Error(err))
		return err
	case sig := <-quit:
		logger.Sugar().Infof("Received %s, server is shutting down...", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}
