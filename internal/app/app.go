package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"scholarship-tracker-go/internal/config"
	"scholarship-tracker-go/internal/database"
	"scholarship-tracker-go/internal/digest"
	"scholarship-tracker-go/internal/formatter"
	"scholarship-tracker-go/internal/handlers"
	"scholarship-tracker-go/internal/httpx"
	"scholarship-tracker-go/internal/metrics"
	"scholarship-tracker-go/internal/notifier"
	"scholarship-tracker-go/internal/scheduler"
	"scholarship-tracker-go/internal/server"
	"scholarship-tracker-go/internal/source"
	"scholarship-tracker-go/internal/store"
	"scholarship-tracker-go/internal/tracker"
)

// Run initializes and starts the application
func Run() error {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	logrus.Info("Starting Scholarship Tracker Service")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	dbConn, err := database.Init(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	m := metrics.NewMetrics()
	st := store.New(dbConn)
	tr := tracker.New(st)

	httpClient := httpx.New(cfg.Scheduler.HTTPTimeout, cfg.Scheduler.MaxRetries)

	var sources []source.Source
	if cfg.Sources.CatalogEnabled {
		sources = append(sources, source.NewCatalog())
	}
	if cfg.Sources.APIURL != "" {
		sources = append(sources, source.NewAPI("Buddy4Study", cfg.Sources.APIURL, httpClient))
	}
	src := source.NewMulti(sources...)

	geminiClient := httpx.New(cfg.Gemini.Timeout, cfg.Scheduler.MaxRetries)
	fm := formatter.NewGemini(&cfg.Gemini, geminiClient)

	nt, err := notifier.New(&cfg.Mail)
	if err != nil {
		return fmt.Errorf("failed to create notifier: %w", err)
	}
	logrus.Infof("Using %s for digest delivery", cfg.Mail.Mode)

	svc := digest.NewService(src, tr, fm, nt, m, cfg.Scheduler.RetentionWindow())

	sched := scheduler.NewScheduler(&cfg.Scheduler, svc)

	h := handlers.NewHandlers(dbConn, st, sched, cfg.Scheduler.RetentionWindow())
	router := server.SetupRouter(h)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	go func() {
		logrus.Infof("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sched.Stop(); err != nil {
		logrus.Errorf("Failed to stop scheduler: %v", err)
	}
	sched.Wait()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("HTTP server shutdown error: %v", err)
	}

	if err := nt.Close(); err != nil {
		logrus.Errorf("Failed to close notifier: %v", err)
	}

	if sqlDB, err := dbConn.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("Failed to close database: %v", err)
		}
	}

	logrus.Info("Server stopped gracefully")
	return nil
}
