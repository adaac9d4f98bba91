package httpapi

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-chart/internal/chart"
	"github.com/i474232898/weather-chart/internal/store"
	"github.com/i474232898/weather-chart/internal/weather"
)

var validate = validator.New()

// Deps bundles what the handlers need.
type Deps struct {
	Service  *weather.Service
	Renderer *chart.Renderer
	Surface  *store.MemoryStore
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html")
		return c.SendString(indexHTML)
	})

	v1 := app.Group("/api/v1")

	v1.Get("/chart.svg", func(c *fiber.Ctx) error {
		frame := d.Surface.Snapshot()
		l := d.Renderer.Layout()

		var buf bytes.Buffer
		if err := chart.EncodeSVG(&buf, l.Width, l.Height, frame.Elements); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to encode chart")
		}

		etag := `"` + strconv.FormatUint(xxhash.Sum64(buf.Bytes()), 16) + `"`
		c.Set(fiber.HeaderETag, etag)
		c.Set("X-Frame-ID", frame.ID.String())
		c.Set(fiber.HeaderCacheControl, "no-cache")
		if c.Get(fiber.HeaderIfNoneMatch) == etag {
			return c.SendStatus(fiber.StatusNotModified)
		}

		c.Type("svg")
		return c.Send(buf.Bytes())
	})

	v1.Post("/keys", func(c *fiber.Ctx) error {
		var req keyRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid key payload")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		year, changed := d.Service.HandleKey(*req.KeyCode)
		return c.JSON(fiber.Map{
			"year":    year,
			"changed": changed,
		})
	})

	v1.Get("/years", func(c *fiber.Ctx) error {
		t := d.Service.Table()
		return c.JSON(fiber.Map{
			"baseYear":  t.BaseYear,
			"yearCount": t.YearCount,
			"years":     t.Years(),
			"selected":  d.Service.Year(),
			"skipped":   t.Skipped,
		})
	})

	v1.Get("/years/:year/averages", func(c *fiber.Ctx) error {
		year, err := parseYear(c)
		if err != nil {
			return err
		}

		row, err := d.Service.Row(year)
		if err != nil {
			return yearError(err)
		}

		months := make([]monthAverage, 0, len(row))
		for i, m := range row {
			ma := monthAverage{Month: i + 1, Name: weather.MonthNames[i], Days: m.Days}
			if m.HasData() {
				v := m.Value
				ma.Average = &v
			}
			months = append(months, ma)
		}

		return c.JSON(fiber.Map{
			"year":   year,
			"months": months,
		})
	})

	v1.Get("/years/:year/chart.png", func(c *fiber.Ctx) error {
		year, err := parseYear(c)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		err = d.Renderer.RenderPNG(&buf, d.Service.Table(), year)
		if err != nil && !errors.Is(err, chart.ErrNoData) {
			return yearError(err)
		}

		c.Type("png")
		return c.Send(buf.Bytes())
	})
}

// keyRequest is the body of a key press forwarded by the page.
type keyRequest struct {
	KeyCode *int `json:"keyCode" validate:"required,gte=0"`
}

// monthAverage is one month in the averages response.
type monthAverage struct {
	Month   int      `json:"month"`
	Name    string   `json:"name"`
	Average *float64 `json:"average"`
	Days    int      `json:"days"`
}

func parseYear(c *fiber.Ctx) (int, error) {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "year must be an integer")
	}
	return year, nil
}

func yearError(err error) error {
	switch {
	case errors.Is(err, weather.ErrYearOutOfRange):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render chart")
	}
}
