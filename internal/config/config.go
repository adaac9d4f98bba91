package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/i474232898/weather-chart/internal/chart"
)

var validate = validator.New()

type AppConfig struct {
	// DataSource is a CSV path or an http(s) URL.
	DataSource string `validate:"required"`

	BaseYear    int `validate:"gte=1"`
	YearCount   int `validate:"gte=1,lte=500"`
	DefaultYear int

	CanvasWidth        float64       `validate:"gt=0"`
	CanvasHeight       float64       `validate:"gt=0"`
	CanvasPadding      float64       `validate:"gte=0"`
	BarPadding         float64       `validate:"gte=0"`
	TransitionDuration time.Duration `validate:"gte=0"`
	AxisTicks          int           `validate:"gte=1,lte=20"`

	PrevKey int `validate:"gte=0,nefield=NextKey"`
	NextKey int `validate:"gte=0"`

	// AutoplayInterval steps to the next year periodically (0 = off).
	AutoplayInterval time.Duration `validate:"gte=0"`

	HTTPTimeout time.Duration `validate:"gt=0"`
	Port        string        `validate:"required,numeric"`
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.DataSource = getenvDefault("DATA_SOURCE", "meteo.csv")

	cfg.BaseYear = getenvInt("BASE_YEAR", 2010)
	cfg.YearCount = getenvInt("YEAR_COUNT", 5)
	cfg.DefaultYear = getenvInt("DEFAULT_YEAR", cfg.BaseYear+cfg.YearCount-1)

	cfg.CanvasWidth = getenvFloat("CANVAS_WIDTH", 600)
	cfg.CanvasHeight = getenvFloat("CANVAS_HEIGHT", 400)
	cfg.CanvasPadding = getenvFloat("CANVAS_PADDING", 50)
	cfg.BarPadding = getenvFloat("BAR_PADDING", 10)
	cfg.AxisTicks = getenvInt("AXIS_TICKS", 5)

	cfg.PrevKey = getenvInt("PREV_KEY", 37)
	cfg.NextKey = getenvInt("NEXT_KEY", 39)

	var err error
	if cfg.TransitionDuration, err = getenvDuration("TRANSITION_DURATION", "1.5s"); err != nil {
		return nil, err
	}
	if cfg.AutoplayInterval, err = getenvDuration("AUTOPLAY_INTERVAL", "0s"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	cfg.Port = getenvDefault("PORT", "8080")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and that the default year lies in the configured range.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	last := c.BaseYear + c.YearCount - 1
	if c.DefaultYear < c.BaseYear || c.DefaultYear > last {
		return fmt.Errorf("invalid config: DEFAULT_YEAR %d not in [%d, %d]", c.DefaultYear, c.BaseYear, last)
	}
	if err := c.Layout().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Layout derives the chart layout from the canvas settings.
func (c *AppConfig) Layout() chart.Layout {
	l := chart.DefaultLayout()
	l.Width = c.CanvasWidth
	l.Height = c.CanvasHeight
	l.Padding = c.CanvasPadding
	l.BarPadding = c.BarPadding
	l.Duration = c.TransitionDuration
	l.TickCount = c.AxisTicks
	return l
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
		log.Printf("WARN: invalid %s=%q, using %d", key, v, def)
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
		log.Printf("WARN: invalid %s=%q, using %g", key, v, def)
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
