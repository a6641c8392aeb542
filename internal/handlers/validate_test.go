package handlers

import (
	"strings"
	"testing"

	"sitekit/internal/models"
)

func TestValidateCustomizations(t *testing.T) {
	tests := []struct {
		name      string
		in        models.Customizations
		wantError bool
	}{
		{"empty is valid", models.Customizations{}, false},
		{"full valid", models.Customizations{
			ProjectName: "Acme Site", CompanyName: "Acme", Tagline: "We build",
			Year: 2030, Color: "#1A2b3c", Style: "bold",
		}, false},
		{"named color", models.Customizations{Color: "teal"}, false},
		{"year lower bound", models.Customizations{Year: 1900}, false},
		{"year upper bound", models.Customizations{Year: 9999}, false},
		{"year too small", models.Customizations{Year: 1899}, true},
		{"year too large", models.Customizations{Year: 10000}, true},
		{"negative year", models.Customizations{Year: -5}, true},
		{"project too long", models.Customizations{ProjectName: strings.Repeat("a", 121)}, true},
		{"project at limit", models.Customizations{ProjectName: strings.Repeat("é", 120)}, false},
		{"company too long", models.Customizations{CompanyName: strings.Repeat("a", 121)}, true},
		{"blank company", models.Customizations{CompanyName: "   "}, true},
		{"tagline too long", models.Customizations{Tagline: strings.Repeat("a", 201)}, true},
		{"short hex", models.Customizations{Color: "#fff"}, true},
		{"uppercase name", models.Customizations{Color: "Blue"}, true},
		{"css injection", models.Customizations{Color: "red;background:url(x)"}, true},
		{"color too long", models.Customizations{Color: strings.Repeat("a", 33)}, true},
		{"style too long", models.Customizations{Style: strings.Repeat("a", 33)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateCustomizations(tt.in)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateCustomizationsMessage(t *testing.T) {
	got := validateCustomizations(models.Customizations{Year: 42})
	if got != "Year must be between 1900 and 9999." {
		t.Errorf("message: got %q", got)
	}
}
