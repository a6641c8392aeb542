// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package customize rewrites a template's frontend DSL by swapping the
// generic placeholder text baked into the catalog for caller-supplied
// values (company name, tagline, copyright year).
package customize

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"sitekit/internal/models"
)

// yearMarker is the copyright-year token every catalog template carries.
const yearMarker = "y(2024)"

var (
	// companyPlaceholders are the generic business names used across the
	// catalog. No entry is a substring of another.
	companyPlaceholders = []string{
		"Your Company",
		"Your Name",
		"Restaurant Name",
		"Your SaaS",
		"Your Studio",
		"Your Blog",
		"Your Store",
	}

	// taglinePlaceholders are the generic hero taglines used across the catalog.
	taglinePlaceholders = []string{
		"Professional Services",
		"Fine Dining Experience",
		"Build Something Amazing",
		"Creative Portfolio",
		"Thoughts & Stories",
		"Quality Products Delivered",
	}

	companyPattern = literalAlternation(companyPlaceholders)
	taglinePattern = literalAlternation(taglinePlaceholders)
)

// literalAlternation compiles a pattern matching any of the given phrases
// literally. Longer phrases are tried first.
func literalAlternation(phrases []string) *regexp.Regexp {
	sorted := slices.Clone(phrases)
	slices.SortStableFunc(sorted, func(a, b string) int { return len(b) - len(a) })
	quoted := make([]string, len(sorted))
	for i, p := range sorted {
		quoted[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(strings.Join(quoted, "|"))
}

// DSL returns dsl with the customizations applied in a fixed order:
// company name, then tagline, then year. Each step sees the output of the
// previous one. Steps whose value is absent leave the string untouched.
func DSL(dsl string, c models.Customizations) string {
	out := dsl
	if c.CompanyName != "" {
		out = companyPattern.ReplaceAllLiteralString(out, c.CompanyName)
	}
	if c.Tagline != "" {
		out = taglinePattern.ReplaceAllLiteralString(out, c.Tagline)
	}
	if c.Year != 0 {
		out = strings.ReplaceAll(out, yearMarker, "y("+strconv.Itoa(c.Year)+")")
	}
	return out
}

// CompanyPlaceholders returns a copy of the company-name placeholder table.
func CompanyPlaceholders() []string {
	return slices.Clone(companyPlaceholders)
}

// TaglinePlaceholders returns a copy of the tagline placeholder table.
func TaglinePlaceholders() []string {
	return slices.Clone(taglinePlaceholders)
}

// YearMarker returns the literal year token replaced by DSL.
func YearMarker() string {
	return yearMarker
}

// Coverage reports which placeholder kinds appear in dsl. Templates that
// miss one silently ignore the matching customization.
func Coverage(dsl string) (company, tagline, year bool) {
	return companyPattern.MatchString(dsl), taglinePattern.MatchString(dsl), strings.Contains(dsl, yearMarker)
}
