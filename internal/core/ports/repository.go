package ports

import (
	"context"

	"github.com/ewilliams-labs/dashboard/internal/core/domain"
)

// WidgetRepository persists the dashboard widget configuration.
type WidgetRepository interface {
	ListWidgets(ctx context.Context) ([]domain.Widget, error)
	// UpsertWidgets inserts or updates widgets keyed by name.
	UpsertWidgets(ctx context.Context, widgets []domain.Widget) error
}
