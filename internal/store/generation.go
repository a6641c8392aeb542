// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// generation.go records every template generation in the database so the
// team can see which templates are used and what customers change.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"sitekit/internal/models"
)

// GenerationStore handles generation log operations.
type GenerationStore struct {
	db *sql.DB
}

// NewGenerationStore creates a new GenerationStore.
func NewGenerationStore(db *sql.DB) *GenerationStore {
	return &GenerationStore{db: db}
}

// Record inserts a generation entry and returns it with its ID and timestamp.
func (s *GenerationStore) Record(ctx context.Context, templateID string, c models.Customizations, exportKey string) (*models.Generation, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal customizations: %w", err)
	}

	g := &models.Generation{
		TemplateID:     templateID,
		ProjectName:    c.ProjectName,
		CompanyName:    c.CompanyName,
		Customizations: c,
		ExportKey:      exportKey,
	}
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO generations (template_id, project_name, company_name, customizations, export_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, templateID, c.ProjectName, c.CompanyName, raw, exportKey).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("record generation: %w", err)
	}
	return g, nil
}

// Recent returns the most recent generations, newest first.
func (s *GenerationStore) Recent(ctx context.Context, limit int) ([]models.Generation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, template_id, project_name, company_name, customizations, export_key, created_at
		FROM generations
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	defer rows.Close()

	generations := []models.Generation{}
	for rows.Next() {
		var (
			g   models.Generation
			raw []byte
		)
		if err := rows.Scan(
			&g.ID, &g.TemplateID, &g.ProjectName, &g.CompanyName,
			&raw, &g.ExportKey, &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &g.Customizations); err != nil {
				return nil, fmt.Errorf("decode customizations for %s: %w", g.ID, err)
			}
		}
		generations = append(generations, g)
	}
	return generations, rows.Err()
}

// CountByTemplate returns how many generations each template has had.
func (s *GenerationStore) CountByTemplate(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT template_id, COUNT(*)
		FROM generations
		GROUP BY template_id
	`)
	if err != nil {
		return nil, fmt.Errorf("count generations: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			id string
			n  int
		)
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("scan generation count: %w", err)
		}
		counts[id] = n
	}
	return counts, rows.Err()
}
