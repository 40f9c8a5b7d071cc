package db

import (
	"context"
	"fmt"

	"schoolwidget/internal/models"
)

// IncrementKeywordLookup upserts an answer lookup count by outcome.
func (d *DB) IncrementKeywordLookup(ctx context.Context, keyword, outcome string) error {
	if keyword == "" {
		return ErrEmptyKeyword
	}
	if outcome == "" {
		return ErrEmptyOutcome
	}

	_, err := d.Pool.Exec(ctx, `
		INSERT INTO keyword_lookups (keyword, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (keyword, outcome) DO UPDATE
		SET count = keyword_lookups.count + 1, last_seen_at = NOW()
	`, keyword, outcome)
	if err != nil {
		return fmt.Errorf("incrementing lookup %s/%s: %w", keyword, outcome, err)
	}
	return nil
}

// GetAllKeywordLookups returns all keyword lookup rows for metrics export.
func (d *DB) GetAllKeywordLookups(ctx context.Context) ([]models.KeywordLookup, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT keyword, outcome, count, last_seen_at
		FROM keyword_lookups
		ORDER BY keyword, outcome
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.KeywordLookup
	for rows.Next() {
		var l models.KeywordLookup
		if err := rows.Scan(&l.Keyword, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
