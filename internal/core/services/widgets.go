package services

import (
	"context"
	"fmt"

	"github.com/ewilliams-labs/dashboard/internal/core/domain"
	"github.com/ewilliams-labs/dashboard/internal/core/ports"
)

// Widgets serves the dashboard layout configuration.
type Widgets struct {
	repo ports.WidgetRepository
}

// NewWidgets constructs a Widgets service.
func NewWidgets(repo ports.WidgetRepository) *Widgets {
	return &Widgets{repo: repo}
}

// List returns the configured widgets in layout order.
func (w *Widgets) List(ctx context.Context) ([]domain.Widget, error) {
	widgets, err := w.repo.ListWidgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list widgets: %w", err)
	}
	return widgets, nil
}

// SeedDefaults writes the default widgets and returns how many were written.
// Seeding is keyed by widget name, so calling it again never adds rows.
func (w *Widgets) SeedDefaults(ctx context.Context) (int, error) {
	defaults := domain.DefaultWidgets()
	if err := w.repo.UpsertWidgets(ctx, defaults); err != nil {
		return 0, fmt.Errorf("service: failed to seed widgets: %w", err)
	}
	return len(defaults), nil
}
