package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"sitekit/internal/catalog"
	"sitekit/internal/models"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestListYAML(t *testing.T) {
	code, out, _ := runCLI(t, "list")
	require.Equal(t, 0, code)

	var got []models.SiteTemplate
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Len(t, got, len(catalog.All()))
	assert.Contains(t, out, "frontend_dsl:")
}

func TestListFilters(t *testing.T) {
	code, out, _ := runCLI(t, "list", "-category", "business", "-popular", "-format", "json")
	require.Equal(t, 0, code)

	var got []models.SiteTemplate
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "business_professional", got[0].ID)
}

func TestListByFeature(t *testing.T) {
	code, out, _ := runCLI(t, "list", "-feature", "newsletter", "-popular", "-format", "json")
	require.Equal(t, 0, code)

	var got []models.SiteTemplate
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "saas_landing", got[0].ID)
	assert.True(t, got[0].HasFeature("newsletter"))
}

func TestCategories(t *testing.T) {
	code, out, _ := runCLI(t, "categories", "-format", "json")
	require.Equal(t, 0, code)

	var got []models.Category
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, catalog.Categories(), got)
}

func TestShow(t *testing.T) {
	for _, args := range [][]string{
		{"show", "saas_landing", "-format", "json"},
		{"show", "-format", "json", "saas_landing"},
	} {
		code, out, _ := runCLI(t, args...)
		require.Equal(t, 0, code, args)

		var got models.SiteTemplate
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		want, _ := catalog.ByID("saas_landing")
		assert.Equal(t, want, got)
	}
}

func TestPreview(t *testing.T) {
	code, out, _ := runCLI(t, "preview", "blog_minimal")
	require.Equal(t, 0, code)

	var got models.PreviewData
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	tmpl, _ := catalog.ByID("blog_minimal")
	assert.Equal(t, tmpl.Name, got.Name)
	assert.Equal(t, tmpl.FrontendDSL, got.DSL)
}

func TestGenerate(t *testing.T) {
	code, out, _ := runCLI(t, "generate", "saas_landing",
		"-company", "Acme", "-tagline", "We build", "-year", "2030",
		"-project", "Acme Site", "-color", "teal", "-format", "json")
	require.Equal(t, 0, code)

	var got models.GenerationResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Acme Site", got.Template.Name)
	assert.Equal(t, "teal", got.Template.ColorScheme)
	assert.Contains(t, got.FrontendDSL, "y(2030)")
	assert.NotContains(t, got.FrontendDSL, "Your SaaS")
	assert.NotContains(t, got.FrontendDSL, "Build Something Amazing")
}

func TestUnknownTemplate(t *testing.T) {
	for _, cmd := range []string{"show", "preview", "generate"} {
		code, out, errOut := runCLI(t, cmd, "nonexistent")
		assert.Equal(t, 1, code, cmd)
		assert.Empty(t, out, cmd)
		assert.Contains(t, errOut, "nonexistent", cmd)
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"frobnicate"}},
		{"missing id", []string{"show"}},
		{"unknown flag", []string{"list", "-colour"}},
		{"stray argument", []string{"categories", "extra"}},
		{"extra argument after id", []string{"show", "saas_landing", "extra"}},
		{"extra argument after flags", []string{"preview", "-format", "json", "blog_minimal", "extra"}},
		{"extra argument with leading id", []string{"generate", "saas_landing", "-year", "2030", "extra"}},
		{"bad year", []string{"generate", "saas_landing", "-year", "soon"}},
		{"bad format", []string{"list", "-format", "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, tt.args...)
			assert.Equal(t, 2, code)
			assert.NotEmpty(t, strings.TrimSpace(errOut))
		})
	}
}

func TestHelp(t *testing.T) {
	code, out, _ := runCLI(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "usage: sitekit-cli")
}
