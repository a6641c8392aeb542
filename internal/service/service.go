// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package service is the application-facing façade over the template
// catalog. It looks templates up, builds preview views, and produces
// customized generation results without ever touching the catalog itself.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"sitekit/internal/customize"
	"sitekit/internal/models"
)

// ErrTemplateNotFound is returned by Generate for an unknown template ID.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateSource provides read-only access to templates.
// *catalog.Registry satisfies it.
type TemplateSource interface {
	All() []models.SiteTemplate
	ByCategory(category string) []models.SiteTemplate
	Popular() []models.SiteTemplate
	ByID(id string) (models.SiteTemplate, bool)
	Categories() []models.Category
}

// ListFilter narrows List results. Zero value lists everything.
type ListFilter struct {
	Category    string
	PopularOnly bool
	Feature     string // capability every listed template must declare
}

// TemplateService exposes template lookup and customization.
type TemplateService struct {
	source TemplateSource
	logger *slog.Logger
}

// New creates a TemplateService. A nil logger falls back to slog.Default().
func New(source TemplateSource, logger *slog.Logger) *TemplateService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplateService{source: source, logger: logger}
}

// List returns templates matching the filter, in catalog order. Filters
// combine; an unknown category or feature yields an empty list.
func (s *TemplateService) List(f ListFilter) []models.SiteTemplate {
	var templates []models.SiteTemplate
	switch {
	case f.Category != "":
		templates = s.source.ByCategory(f.Category)
		if f.PopularOnly {
			templates = slices.DeleteFunc(templates, func(t models.SiteTemplate) bool { return !t.Popular })
		}
	case f.PopularOnly:
		templates = s.source.Popular()
	default:
		templates = s.source.All()
	}

	if f.Feature != "" {
		templates = slices.DeleteFunc(templates, func(t models.SiteTemplate) bool { return !t.HasFeature(f.Feature) })
	}
	return templates
}

// Get returns the full template record.
func (s *TemplateService) Get(id string) (models.SiteTemplate, bool) {
	return s.source.ByID(id)
}

// Categories returns the catalog categories.
func (s *TemplateService) Categories() []models.Category {
	return s.source.Categories()
}

// PreviewData returns the reduced preview view of a template. The boolean
// is false when the ID is unknown.
func (s *TemplateService) PreviewData(id string) (*models.PreviewData, bool) {
	t, ok := s.source.ByID(id)
	if !ok {
		return nil, false
	}
	return &models.PreviewData{
		Name:     t.Name,
		DSL:      t.FrontendDSL,
		Features: slices.Clone(t.Features),
		Pages:    slices.Clone(t.Pages),
		Style:    t.Style,
		Color:    t.ColorScheme,
	}, true
}

// Generate applies customizations to a copy of the template and returns
// the result. The catalog entry is never modified. Unknown IDs yield an
// error wrapping ErrTemplateNotFound.
func (s *TemplateService) Generate(id string, c models.Customizations) (*models.GenerationResult, error) {
	original, ok := s.source.ByID(id)
	if !ok {
		return nil, fmt.Errorf("generate %q: %w", id, ErrTemplateNotFound)
	}

	final := original.Clone()
	if c.ProjectName != "" {
		final.Name = c.ProjectName
	}
	final.FrontendDSL = customize.DSL(original.FrontendDSL, c)
	if c.Color != "" {
		final.ColorScheme = c.Color
	}
	if c.Style != "" {
		final.Style = c.Style
	}

	s.logger.Debug("template generated",
		"template_id", id,
		"customized", !c.IsZero(),
	)

	return &models.GenerationResult{
		Template:      final,
		BackendTokens: slices.Clone(original.BackendTokens),
		FrontendDSL:   final.FrontendDSL,
		Features:      slices.Clone(original.Features),
	}, nil
}
