// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns project names into path-safe segments for export keys.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches anything that isn't a letter, digit, whitespace or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespace runs become a single hyphen.
	whitespace = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// foldAccents decomposes the input and drops combining marks, so "Café"
// becomes "Cafe" instead of losing the letter entirely.
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Generate creates a URL-friendly slug from the given string.
// Example: "Café Déjà Vu 2026" → "cafe-deja-vu-2026"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(foldAccents(s)))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespace.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// OrDefault returns Generate(s), or fallback when s has no usable characters.
func OrDefault(s, fallback string) string {
	if out := Generate(s); out != "" {
		return out
	}
	return fallback
}
