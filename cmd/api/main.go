package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appService "backoffice/internal/application/service"
	"backoffice/internal/config"
	"backoffice/internal/infrastructure/database"
	"backoffice/internal/infrastructure/mailer"
	"backoffice/internal/infrastructure/scheduler"
	"backoffice/internal/interfaces/api/handler"
	"backoffice/internal/interfaces/api/router"
	appLogger "backoffice/internal/pkg/logger"

	"gorm.io/gorm"
)

func gracefulShutdown(apiServer *http.Server, gateway appService.SchedulerGateway, db *gorm.DB, log appLogger.Logger, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler gateway first so no task fires mid-shutdown.
	gateway.Stop()
	log.Info("Scheduler gateway stopped.")

	if err := database.Close(db); err != nil {
		log.Error("Error closing database", err)
	} else {
		log.Info("Database connection closed.")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err)
	}

	log.Info("Server exiting")
	done <- true
}

func main() {
	log := appLogger.New()
	cfg := config.MustLoad()

	// --- Infrastructure ---
	db, err := database.New(cfg.Database)
	if err != nil {
		log.Error("Failed to initialize database", err)
		os.Exit(1)
	}
	reminderRepo := database.NewReminderRepository(db)
	newsRepo := database.NewNewsRepository(db)
	userRepo := database.NewUserRepository(db)
	log.Info("Database and repositories initialized.")

	notifier, err := mailer.NewClient(cfg.SMTP, log)
	if err != nil {
		log.Error("Failed to initialize mailer", err)
		os.Exit(1)
	}
	cronScheduler := scheduler.NewScheduler(log)
	gateway := appService.NewCronGateway(cronScheduler, log)

	// --- Application services ---
	newsSvc := appService.NewNewsService(newsRepo, log)
	reminderSvc := appService.NewReminderService(reminderRepo, newsRepo, userRepo, gateway, notifier, log)
	log.Info("Application services initialized.")

	// --- Startup schedule recovery ---
	if err := reminderSvc.InitializeSchedules(context.Background()); err != nil {
		// Pending reminders that failed to re-schedule are logged; the server
		// still starts.
		log.Error("Failed to initialize schedules on startup", err)
	}

	// --- API ---
	newsHandler := handler.NewNewsHandler(newsSvc, reminderSvc, handler.NewHeaderIdentity(), log)
	echoRouter := router.NewRouter(&router.Config{
		NewsHandler: newsHandler,
		Logger:      log,
	})

	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPServer.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, gateway, db, log, done)

	log.Info(fmt.Sprintf("Server starting on port %d", cfg.HTTPServer.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Error("HTTP server ListenAndServe error", err)
		os.Exit(1)
	}

	<-done
	log.Info("Graceful shutdown complete.")
}
