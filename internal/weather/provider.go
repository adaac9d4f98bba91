package weather

import (
	"context"
)

// Source abstracts where daily records come from (local file, HTTP endpoint).
type Source interface {
	Name() string
	Load(ctx context.Context) ([]DailyRecord, error)
}

// Renderer is the contract the chart renderer must satisfy.
type Renderer interface {
	Render(table *MonthlyAverageTable, year int) error
}
