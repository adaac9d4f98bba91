package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-chart/internal/api/http"
	"github.com/i474232898/weather-chart/internal/chart"
	"github.com/i474232898/weather-chart/internal/config"
	"github.com/i474232898/weather-chart/internal/scheduler"
	"github.com/i474232898/weather-chart/internal/selection"
	"github.com/i474232898/weather-chart/internal/store"
	"github.com/i474232898/weather-chart/internal/weather"
	"github.com/i474232898/weather-chart/internal/weather/sources"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for remote record sources.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// Load records once; malformed input stops here.
	src := sources.New(cfg.DataSource, httpClient)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 2*cfg.HTTPTimeout)
	records, err := src.Load(loadCtx)
	cancelLoad()
	if err != nil {
		log.Fatalf("failed to load records from %s source: %v", src.Name(), err)
	}

	table, err := weather.Aggregate(records, cfg.BaseYear, cfg.YearCount)
	if err != nil {
		log.Fatalf("failed to aggregate records: %v", err)
	}

	// In-memory chart surface and the renderer drawing on it.
	surface := store.NewMemoryStore()
	renderer, err := chart.NewRenderer(surface, cfg.Layout())
	if err != nil {
		log.Fatalf("invalid layout: %v", err)
	}

	// Core service orchestrating selection and rendering.
	service, err := weather.NewService(table, renderer, cfg.DefaultYear,
		selection.WithKeys(selection.Key(cfg.PrevKey), selection.Key(cfg.NextKey)))
	if err != nil {
		log.Fatalf("failed to create service: %v", err)
	}
	if err := service.Start(); err != nil {
		if !errors.Is(err, chart.ErrNoData) {
			log.Fatalf("failed to render initial year: %v", err)
		}
		log.Printf("WARN: %v", err)
	}

	// Scheduler that steps through the years when autoplay is on.
	sched := scheduler.New(cfg.AutoplayInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-chart",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-chart",
		})
	})

	httpapi.RegisterRoutes(app, httpapi.Deps{
		Service:  service,
		Renderer: renderer,
		Surface:  surface,
	})

	go func() {
		log.Printf("INFO: serving chart for %d-%d on :%s", table.BaseYear, table.LastYear(), cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
