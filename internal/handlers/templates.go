// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sitekit/internal/cache"
	"sitekit/internal/models"
	"sitekit/internal/service"
	"sitekit/internal/storage"
)

// maxGenerateBody caps the size of a generate request body.
const maxGenerateBody = 64 << 10

// GenerationLog records generations. *store.GenerationStore satisfies it.
type GenerationLog interface {
	Record(ctx context.Context, templateID string, c models.Customizations, exportKey string) (*models.Generation, error)
	Recent(ctx context.Context, limit int) ([]models.Generation, error)
	CountByTemplate(ctx context.Context) (map[string]int, error)
}

// Exporter uploads generated DSL. *storage.Client satisfies it.
type Exporter interface {
	ExportGeneration(ctx context.Context, result *models.GenerationResult) (*storage.Export, error)
}

// Templates groups the template catalog API handlers. The preview cache,
// generation log and exporter are optional; pass nil to run without them.
type Templates struct {
	svc         *service.TemplateService
	previews    *cache.PreviewCache
	generations GenerationLog
	exporter    Exporter
}

// NewTemplates creates a new Templates handler group.
func NewTemplates(svc *service.TemplateService, previews *cache.PreviewCache, generations GenerationLog, exporter Exporter) *Templates {
	return &Templates{
		svc:         svc,
		previews:    previews,
		generations: generations,
		exporter:    exporter,
	}
}

// generateRequest is the body of POST /api/templates/{id}/generate.
type generateRequest struct {
	models.Customizations
	Export bool `json:"export"`
}

// generateResponse wraps a generation result with log and export details.
type generateResponse struct {
	*models.GenerationResult
	GenerationID *uuid.UUID      `json:"generation_id,omitempty"`
	Export       *storage.Export `json:"export,omitempty"`
}

// List returns catalog templates, optionally filtered by ?category=,
// ?popular=true and ?feature=.
func (h *Templates) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.ListFilter{Category: q.Get("category"), Feature: q.Get("feature")}

	if raw := q.Get("popular"); raw != "" {
		popular, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "popular must be true or false")
			return
		}
		filter.PopularOnly = popular
	}

	writeJSON(w, http.StatusOK, h.svc.List(filter))
}

// Categories returns the catalog categories.
func (h *Templates) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Categories())
}

// Get returns the full record for one template.
func (h *Templates) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, ok := h.svc.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Preview returns the reduced preview view of a template, served from the
// Valkey preview cache when possible.
func (h *Templates) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if cached, ok := h.previews.Get(ctx, id); ok {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("X-Cache", "HIT")
		w.Write(cached)
		return
	}

	data, ok := h.svc.PreviewData(id)
	if !ok {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("encode preview failed", "error", err, "template", id)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.previews.Set(ctx, id, body)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Cache", "MISS")
	w.Write(body)
}

// Generate applies the posted customizations to a template. The generation
// is recorded in the log on a best-effort basis, and exported to object
// storage when the request asks for it.
func (h *Templates) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req generateRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxGenerateBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := decodeSingle(dec, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if msg := validateCustomizations(req.Customizations); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	if req.Export && h.exporter == nil {
		writeError(w, http.StatusServiceUnavailable, "export storage is not configured")
		return
	}

	result, err := h.svc.Generate(id, req.Customizations)
	if errors.Is(err, service.ErrTemplateNotFound) {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	if err != nil {
		slog.Error("generate failed", "error", err, "template", id)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := generateResponse{GenerationResult: result}

	if req.Export {
		exp, err := h.exporter.ExportGeneration(ctx, result)
		if err != nil {
			slog.Error("export generation failed", "error", err, "template", id)
			writeError(w, http.StatusInternalServerError, "export failed")
			return
		}
		resp.Export = exp
	}

	if h.generations != nil {
		exportKey := ""
		if resp.Export != nil {
			exportKey = resp.Export.Key
		}
		g, err := h.generations.Record(ctx, id, req.Customizations, exportKey)
		if err != nil {
			slog.Warn("record generation failed", "error", err, "template", id)
		} else {
			resp.GenerationID = &g.ID
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeSingle reads exactly one JSON value from dec. An empty body leaves v
// untouched; anything after the value other than whitespace is an error.
func decodeSingle(dec *json.Decoder, v any) error {
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
