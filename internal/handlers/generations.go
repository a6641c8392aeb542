// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
)

const (
	defaultGenerationsLimit = 20
	maxGenerationsLimit     = 100
)

// Generations lists recent entries from the generation log (?limit=).
func (h *Templates) Generations(w http.ResponseWriter, r *http.Request) {
	if h.generations == nil {
		writeError(w, http.StatusServiceUnavailable, "generation log is not configured")
		return
	}

	limit := defaultGenerationsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxGenerationsLimit)
	}

	entries, err := h.generations.Recent(r.Context(), limit)
	if err != nil {
		slog.Error("list generations failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// GenerationStats returns how many times each template has been generated.
func (h *Templates) GenerationStats(w http.ResponseWriter, r *http.Request) {
	if h.generations == nil {
		writeError(w, http.StatusServiceUnavailable, "generation log is not configured")
		return
	}

	counts, err := h.generations.CountByTemplate(r.Context())
	if err != nil {
		slog.Error("count generations failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":       total,
		"by_template": counts,
	})
}
