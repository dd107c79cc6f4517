package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"event-task-suggester/config"
	_ "event-task-suggester/docs" // Swagger docs
	"event-task-suggester/internal/feedback"
	"event-task-suggester/internal/httpserver"
	"event-task-suggester/internal/suggestion"
	"event-task-suggester/internal/suggestion/engine"
	"event-task-suggester/internal/suggestion/repository/inmem"
	"event-task-suggester/internal/suggestion/usecase"
	"event-task-suggester/pkg/gcalendar"
	"event-task-suggester/pkg/log"
)

// @title       Event Task Suggester API
// @description Rule-based task suggestions for calendar events: classification, complexity analysis, and preparation task synthesis.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Event Task Suggester...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Suggestion engine and stores
	eng := engine.New()
	taskRepo := inmem.New(logger)

	fbStore, err := feedback.New(cfg.Feedback.StorePath, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to open feedback store: %v", err)
		return
	}

	// Google Calendar client (optional)
	var calendar suggestion.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendar = suggestion.NewGoogleCalendar(calendarClient)
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 4. UseCase
	suggestionUC := usecase.New(logger, eng, taskRepo, fbStore, calendar,
		cfg.GoogleCalendar.CalendarID, cfg.Suggestions.CacheSize)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		SuggestionUC: suggestionUC,
		Feedback:     fbStore,
		RateLimit:    cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
