// Package sqlite provides a SQLite-backed implementation of the widget repository port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/ewilliams-labs/dashboard/internal/core/domain"
	"github.com/ewilliams-labs/dashboard/internal/core/ports"
)

// Adapter implements the widget repository port for SQLite
type Adapter struct {
	db *sql.DB
}

var _ ports.WidgetRepository = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	// One connection: every ":memory:" connection would otherwise get its own database.
	db.SetMaxOpenConns(1)

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	if err := adapter.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

// ListWidgets returns every widget in layout order.
func (a *Adapter) ListWidgets(ctx context.Context) ([]domain.Widget, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, name, property, label, type, height, width, position
		FROM widgets
		ORDER BY sort_order ASC, name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}
	defer rows.Close()

	widgets := []domain.Widget{}
	for rows.Next() {
		var w domain.Widget
		var position sql.NullString
		if err := rows.Scan(&w.ID, &w.Name, &w.Property, &w.Label, &w.Type, &w.Height, &w.Width, &position); err != nil {
			return nil, fmt.Errorf("failed to scan widget: %w", err)
		}
		if position.Valid {
			w.Position = position.String
		}
		widgets = append(widgets, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate widgets: %w", err)
	}

	return widgets, nil
}

// UpsertWidgets stores widgets keyed by name. A widget that already exists
// keeps its ID and has every other column replaced; slice order becomes the
// layout order. Either all widgets are written or none are.
func (a *Adapter) UpsertWidgets(ctx context.Context, widgets []domain.Widget) error {
	for _, w := range widgets {
		if err := w.Validate(); err != nil {
			return err
		}
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO widgets (id, name, property, label, type, height, width, position, sort_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			property=excluded.property,
			label=excluded.label,
			type=excluded.type,
			height=excluded.height,
			width=excluded.width,
			position=excluded.position,
			sort_order=excluded.sort_order;
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare widget upsert: %w", err)
	}
	defer stmt.Close()

	for i, w := range widgets {
		id := w.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, err := stmt.ExecContext(ctx, id, w.Name, w.Property, w.Label, w.Type, w.Height, w.Width, w.Position, i); err != nil {
			return fmt.Errorf("failed to save widget %s: %w", w.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit failed: %w", err)
	}

	return nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS widgets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		property TEXT NOT NULL DEFAULT '',
		label TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT '',
		height INTEGER NOT NULL,
		width INTEGER NOT NULL,
		position TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := a.db.Exec(query)
	return err
}
