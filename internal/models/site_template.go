// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "slices"

// SiteTemplate describes one selectable website template from the catalog.
// FrontendDSL holds the page markup with human-readable placeholder text
// (e.g. "Your Company", "y(2024)") that customization swaps out.
type SiteTemplate struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Category      string   `json:"category" yaml:"category"`
	Description   string   `json:"description" yaml:"description"`
	PreviewImage  string   `json:"preview_image" yaml:"preview_image"`
	Industry      string   `json:"industry" yaml:"industry"`
	SetupTime     string   `json:"setup_time" yaml:"setup_time"`
	DemoURL       string   `json:"demo_url" yaml:"demo_url"`
	Popular       bool     `json:"popular" yaml:"popular"`
	Style         string   `json:"style" yaml:"style"`
	ColorScheme   string   `json:"color_scheme" yaml:"color_scheme"`
	Features      []string `json:"features" yaml:"features"`
	BackendTokens []string `json:"backend_tokens" yaml:"backend_tokens"`
	Pages         []string `json:"pages" yaml:"pages"`
	FrontendDSL   string   `json:"frontend_dsl" yaml:"frontend_dsl"`
}

// Clone returns a copy of the template that shares no slices with t.
func (t SiteTemplate) Clone() SiteTemplate {
	t.Features = slices.Clone(t.Features)
	t.BackendTokens = slices.Clone(t.BackendTokens)
	t.Pages = slices.Clone(t.Pages)
	return t
}

// HasFeature reports whether the template declares the named capability.
func (t SiteTemplate) HasFeature(feature string) bool {
	return slices.Contains(t.Features, feature)
}

// Category groups templates in the gallery.
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
}
