package models

import "testing"

// TestSiteTemplateCloneIsolation verifies that mutating a clone never
// reaches the original template's slices.
func TestSiteTemplateCloneIsolation(t *testing.T) {
	orig := SiteTemplate{
		ID:            "t1",
		Features:      []string{"user_login", "contact_form"},
		BackendTokens: []string{"auth", "mail"},
		Pages:         []string{"home", "about"},
	}

	c := orig.Clone()
	c.Features[0] = "changed"
	c.BackendTokens[1] = "changed"
	c.Pages = append(c.Pages[:0], "changed")

	if orig.Features[0] != "user_login" {
		t.Errorf("Features aliased: got %q", orig.Features[0])
	}
	if orig.BackendTokens[1] != "mail" {
		t.Errorf("BackendTokens aliased: got %q", orig.BackendTokens[1])
	}
	if orig.Pages[0] != "home" {
		t.Errorf("Pages aliased: got %q", orig.Pages[0])
	}
}

func TestSiteTemplateHasFeature(t *testing.T) {
	tmpl := SiteTemplate{Features: []string{"user_login", "blog"}}

	tests := []struct {
		feature string
		want    bool
	}{
		{"user_login", true},
		{"blog", true},
		{"Blog", false},
		{"", false},
	}
	for _, tc := range tests {
		t.Run(tc.feature, func(t *testing.T) {
			if got := tmpl.HasFeature(tc.feature); got != tc.want {
				t.Errorf("HasFeature(%q) = %v, want %v", tc.feature, got, tc.want)
			}
		})
	}
}

func TestCustomizationsIsZero(t *testing.T) {
	if !(Customizations{}).IsZero() {
		t.Error("empty customizations should be zero")
	}
	if (Customizations{Year: 2030}).IsZero() {
		t.Error("year-only customizations should not be zero")
	}
	if (Customizations{Color: "blue"}).IsZero() {
		t.Error("color-only customizations should not be zero")
	}
}
