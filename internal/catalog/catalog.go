// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog holds the compiled-in registry of website templates and
// their categories. The registry is built once and never changes, so it is
// safe to read from any number of goroutines without locking.
package catalog

import (
	"fmt"
	"slices"

	"sitekit/internal/models"
)

// Registry is a read-only collection of templates keyed by ID. Every
// accessor hands out copies, so callers can never modify the catalog.
type Registry struct {
	templates  []models.SiteTemplate
	index      map[string]int
	categories []models.Category
}

// New builds a registry from the given categories and templates, keeping
// their order. It returns an error on empty or duplicate IDs and on
// templates that reference an undeclared category.
func New(categories []models.Category, templates []models.SiteTemplate) (*Registry, error) {
	r := &Registry{
		templates:  make([]models.SiteTemplate, 0, len(templates)),
		index:      make(map[string]int, len(templates)),
		categories: slices.Clone(categories),
	}

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c.ID == "" {
			return nil, fmt.Errorf("category with empty id")
		}
		if known[c.ID] {
			return nil, fmt.Errorf("duplicate category %q", c.ID)
		}
		known[c.ID] = true
	}

	for _, t := range templates {
		if t.ID == "" {
			return nil, fmt.Errorf("template %q has empty id", t.Name)
		}
		if _, dup := r.index[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", t.ID)
		}
		if !known[t.Category] {
			return nil, fmt.Errorf("template %q: unknown category %q", t.ID, t.Category)
		}
		r.index[t.ID] = len(r.templates)
		r.templates = append(r.templates, t.Clone())
	}
	return r, nil
}

// MustNew is like New but panics on invalid data. Used for compiled-in catalogs.
func MustNew(categories []models.Category, templates []models.SiteTemplate) *Registry {
	r, err := New(categories, templates)
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return r
}

// All returns every template in declaration order.
func (r *Registry) All() []models.SiteTemplate {
	return r.filter(func(models.SiteTemplate) bool { return true })
}

// ByCategory returns templates whose category equals category exactly.
// The result is empty, not nil, when nothing matches.
func (r *Registry) ByCategory(category string) []models.SiteTemplate {
	return r.filter(func(t models.SiteTemplate) bool { return t.Category == category })
}

// Popular returns the templates flagged as popular.
func (r *Registry) Popular() []models.SiteTemplate {
	return r.filter(func(t models.SiteTemplate) bool { return t.Popular })
}

// ByID looks up a template. The boolean is false for unknown IDs.
func (r *Registry) ByID(id string) (models.SiteTemplate, bool) {
	i, ok := r.index[id]
	if !ok {
		return models.SiteTemplate{}, false
	}
	return r.templates[i].Clone(), true
}

// IDs returns the template IDs in declaration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.templates))
	for i, t := range r.templates {
		ids[i] = t.ID
	}
	return ids
}

// Categories returns the declared categories in order.
func (r *Registry) Categories() []models.Category {
	return slices.Clone(r.categories)
}

// Len returns the number of templates.
func (r *Registry) Len() int {
	return len(r.templates)
}

func (r *Registry) filter(keep func(models.SiteTemplate) bool) []models.SiteTemplate {
	out := make([]models.SiteTemplate, 0, len(r.templates))
	for _, t := range r.templates {
		if keep(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// defaultRegistry is the process-wide catalog built from the compiled-in data.
var defaultRegistry = MustNew(builtinCategories, builtinTemplates)

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// All returns every built-in template.
func All() []models.SiteTemplate { return defaultRegistry.All() }

// ByCategory returns built-in templates in the given category.
func ByCategory(category string) []models.SiteTemplate { return defaultRegistry.ByCategory(category) }

// Popular returns the popular built-in templates.
func Popular() []models.SiteTemplate { return defaultRegistry.Popular() }

// ByID looks up a built-in template.
func ByID(id string) (models.SiteTemplate, bool) { return defaultRegistry.ByID(id) }

// Categories returns the built-in categories.
func Categories() []models.Category { return defaultRegistry.Categories() }
