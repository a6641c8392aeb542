package handlers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"sitekit/internal/models"
)

// Validation limits for customization fields.
const (
	minYear = 1900
	maxYear = 9999
)

// colorToken accepts a hex colour (#rrggbb) or a lowercase colour name.
var colorToken = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|[a-z]+)$`)

// customizationInput mirrors models.Customizations with validation rules.
type customizationInput struct {
	ProjectName string `validate:"omitempty,notblank,max=120"`
	CompanyName string `validate:"omitempty,notblank,max=120"`
	Tagline     string `validate:"omitempty,notblank,max=200"`
	Year        int    `validate:"omitempty,min=1900,max=9999"`
	Color       string `validate:"omitempty,max=32,colortoken"`
	Style       string `validate:"omitempty,notblank,max=32"`
}

// fieldLabels names fields in user-facing messages.
var fieldLabels = map[string]string{
	"ProjectName": "Project name",
	"CompanyName": "Company name",
	"Tagline":     "Tagline",
	"Year":        "Year",
	"Color":       "Color",
	"Style":       "Style",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterValidation("colortoken", func(fl validator.FieldLevel) bool {
		return colorToken.MatchString(fl.Field().String())
	})
	return v
}

// validateCustomizations checks generate request fields and returns the
// first problem found, or "" when the input is acceptable.
func validateCustomizations(c models.Customizations) string {
	err := validate.Struct(customizationInput(c))
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid customizations."
	}
	return validationMessage(verrs[0])
}

// validationMessage turns a validator failure into a sentence for the client.
func validationMessage(fe validator.FieldError) string {
	label := fieldLabels[fe.StructField()]
	switch {
	case fe.StructField() == "Year":
		return fmt.Sprintf("Year must be between %d and %d.", minYear, maxYear)
	case fe.Tag() == "colortoken" || fe.StructField() == "Color":
		return "Color must be a hex value like #1a2b3c or a lowercase colour name."
	case fe.Tag() == "notblank":
		return label + " cannot be blank."
	case fe.Tag() == "max":
		return fmt.Sprintf("%s is too long (max %s characters).", label, fe.Param())
	default:
		return label + " is invalid."
	}
}
