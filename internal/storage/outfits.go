package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jmylchreest/sartor/internal/harmony"
	"github.com/jmylchreest/sartor/internal/wardrobe"
)

// SavedOutfit is a persisted outfit suggestion.
type SavedOutfit struct {
	ID          string          `json:"id"`
	Style       harmony.Style   `json:"style"`
	Score       float64         `json:"score"`
	Explanation string          `json:"explanation"`
	Items       []wardrobe.Item `json:"items"`
	Details     harmony.Details `json:"details"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// SaveOutfit persists an outfit. The item list and scoring details are
// stored as JSON alongside the scalar columns.
func (s *Store) SaveOutfit(ctx context.Context, o SavedOutfit) error {
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encoding outfit items: %w", err)
	}
	detailsJSON, err := json.Marshal(o.Details)
	if err != nil {
		return fmt.Errorf("encoding outfit details: %w", err)
	}

	query := `
		INSERT INTO outfits (id, style, score, explanation, items_json, details_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query,
		o.ID, string(o.Style), o.Score, o.Explanation,
		string(itemsJSON), string(detailsJSON), o.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("inserting outfit: %w", err)
	}

	s.log.Debug("outfit saved",
		zap.String("id", o.ID),
		zap.Float64("score", o.Score))
	return nil
}

// ListOutfits returns saved outfits, newest first.
func (s *Store) ListOutfits(ctx context.Context) ([]SavedOutfit, error) {
	query := `
		SELECT id, style, score, explanation, items_json, details_json, created_at
		FROM outfits
		ORDER BY created_at DESC, id DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying outfits: %w", err)
	}
	defer rows.Close()

	outfits := []SavedOutfit{}
	for rows.Next() {
		var (
			o           SavedOutfit
			style       string
			itemsJSON   string
			detailsJSON string
			createdAt   int64
		)
		if err := rows.Scan(&o.ID, &style, &o.Score, &o.Explanation, &itemsJSON, &detailsJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning outfit: %w", err)
		}
		if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
			return nil, fmt.Errorf("decoding outfit items: %w", err)
		}
		if err := json.Unmarshal([]byte(detailsJSON), &o.Details); err != nil {
			return nil, fmt.Errorf("decoding outfit details: %w", err)
		}
		o.Style = harmony.Style(style)
		o.CreatedAt = time.UnixMilli(createdAt).UTC()
		outfits = append(outfits, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating outfits: %w", err)
	}
	return outfits, nil
}

// DeleteOutfit removes one saved outfit by id. Returns ErrNotFound when
// no such outfit exists.
func (s *Store) DeleteOutfit(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM outfits WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting outfit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting outfit: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	s.log.Debug("outfit deleted", zap.String("id", id))
	return nil
}
