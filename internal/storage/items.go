package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jmylchreest/sartor/internal/wardrobe"
)

// AddItem stores a wardrobe item.
func (s *Store) AddItem(ctx context.Context, item wardrobe.Item) error {
	query := `
		INSERT INTO items (id, category, hue, saturation, lightness, hex, label, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	label := sql.NullString{String: item.Label, Valid: item.Label != ""}
	_, err := s.db.ExecContext(ctx, query,
		item.ID, string(item.Category),
		item.Colour.H, item.Colour.S, item.Colour.L,
		item.Hex, label, item.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}

	s.log.Debug("item stored",
		zap.String("id", item.ID),
		zap.String("category", string(item.Category)))
	return nil
}

// GetItem retrieves one item by id. Returns ErrNotFound when no such
// item exists.
func (s *Store) GetItem(ctx context.Context, id string) (wardrobe.Item, error) {
	query := `
		SELECT id, category, hue, saturation, lightness, hex, label, created_at
		FROM items
		WHERE id = ?
	`
	item, err := scanItem(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return wardrobe.Item{}, ErrNotFound
	}
	if err != nil {
		return wardrobe.Item{}, fmt.Errorf("querying item: %w", err)
	}
	return item, nil
}

// ListItems returns items in insertion order, optionally filtered to a
// single category. An empty category returns everything.
func (s *Store) ListItems(ctx context.Context, category wardrobe.Category) ([]wardrobe.Item, error) {
	query := `
		SELECT id, category, hue, saturation, lightness, hex, label, created_at
		FROM items
	`
	args := []any{}
	if category != "" {
		query += " WHERE category = ?"
		args = append(args, string(category))
	}
	query += " ORDER BY created_at ASC, id ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	items := []wardrobe.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// DeleteItem removes one item by id. Returns ErrNotFound when no such
// item exists.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	s.log.Debug("item deleted", zap.String("id", id))
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (wardrobe.Item, error) {
	var (
		item      wardrobe.Item
		category  string
		label     sql.NullString
		createdAt int64
	)
	err := row.Scan(&item.ID, &category,
		&item.Colour.H, &item.Colour.S, &item.Colour.L,
		&item.Hex, &label, &createdAt)
	if err != nil {
		return wardrobe.Item{}, err
	}
	item.Category = wardrobe.Category(category)
	item.Label = label.String
	item.CreatedAt = time.UnixMilli(createdAt).UTC()
	return item, nil
}
