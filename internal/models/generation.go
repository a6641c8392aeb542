// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Customizations are the optional caller overrides applied to a template.
// Empty strings and a zero Year mean "not supplied".
type Customizations struct {
	ProjectName string `json:"project_name,omitempty" yaml:"project_name,omitempty"`
	CompanyName string `json:"company_name,omitempty" yaml:"company_name,omitempty"`
	Tagline     string `json:"tagline,omitempty" yaml:"tagline,omitempty"`
	Year        int    `json:"year,omitempty" yaml:"year,omitempty"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
	Style       string `json:"style,omitempty" yaml:"style,omitempty"`
}

// IsZero reports whether no override was supplied.
func (c Customizations) IsZero() bool {
	return c == Customizations{}
}

// PreviewData is the reduced view of a template used by preview screens.
type PreviewData struct {
	Name     string   `json:"name" yaml:"name"`
	DSL      string   `json:"dsl" yaml:"dsl"`
	Features []string `json:"features" yaml:"features"`
	Pages    []string `json:"pages" yaml:"pages"`
	Style    string   `json:"style" yaml:"style"`
	Color    string   `json:"color" yaml:"color"`
}

// GenerationResult is the customized template returned to the caller.
// BackendTokens and Features are copies of the source template's lists.
type GenerationResult struct {
	Template      SiteTemplate `json:"template" yaml:"template"`
	BackendTokens []string     `json:"backend_tokens" yaml:"backend_tokens"`
	FrontendDSL   string       `json:"frontend_dsl" yaml:"frontend_dsl"`
	Features      []string     `json:"features" yaml:"features"`
}

// Generation is one recorded generation request in the generation log.
type Generation struct {
	ID             uuid.UUID      `json:"id"`
	TemplateID     string         `json:"template_id"`
	ProjectName    string         `json:"project_name"`
	CompanyName    string         `json:"company_name"`
	Customizations Customizations `json:"customizations"`
	ExportKey      string         `json:"export_key,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}
