// Package handlers wires HTTP routes to the console services.
package handlers

// File: internal/handlers/handlers.go
// Purpose: HTTP handlers for /analysis, /mappings, /fields, /events, /health.

import (
	"encoding/json"
	"net/http"
	"strings"

	"rpo-console-api/internal/db"
	"rpo-console-api/internal/eventlog"
	"rpo-console-api/internal/mapping"
	"rpo-console-api/internal/models"
	"rpo-console-api/internal/services"
)

// Handler groups the HTTP handlers for the console API.
type Handler struct {
	analysis *services.AnalysisService
	mappings *services.MappingService
	log      *eventlog.Log
	store    *db.Store
}

// New returns a Handler wired to the console services.
func New(analysis *services.AnalysisService, mappings *services.MappingService, log *eventlog.Log, store *db.Store) *Handler {
	return &Handler{analysis: analysis, mappings: mappings, log: log, store: store}
}

// Register attaches routes to the provided ServeMux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("POST /analysis", h.analyze)
	mux.HandleFunc("POST /mappings/load", h.loadMappings)
	mux.HandleFunc("POST /mappings/edit", h.editMapping)
	mux.HandleFunc("POST /mappings/save", h.saveMappings)
	mux.HandleFunc("GET /fields", h.fields)
	mux.HandleFunc("GET /events", h.events)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		if err := h.store.Health(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unhealthy", "error": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
		return
	}

	scenarios := make([]string, 0, len(req.Scenarios))
	for _, name := range req.Scenarios {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			scenarios = append(scenarios, trimmed)
		}
	}
	if len(scenarios) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "at least one scenario is required"})
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = services.ModeSingle
	}
	if mode != services.ModeSingle && mode != services.ModeCompare {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "mode must be single or compare"})
		return
	}

	resp, err := h.analysis.Analyze(r.Context(), scenarios, mode)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) loadMappings(w http.ResponseWriter, r *http.Request) {
	var req models.MappingLoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
		return
	}
	cfg, err := h.mappings.Load(r.Context(), req.ScenarioName)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

func (h *Handler) editMapping(w http.ResponseWriter, r *http.Request) {
	var req models.MappingEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
		return
	}
	entity, ok := mapping.ParseEntity(req.Entity)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "entity must be vehicle or consignment"})
		return
	}

	editor := mapping.NewEditor(entity, req.Mapping)
	switch req.Op {
	case "set":
		editor.SetHeader(req.Field, req.Header)
	case "remove":
		editor.Remove(req.Field)
	case "add":
		if err := editor.AddNew(req.Field, req.Header); err != nil {
			writeJSON(w, http.StatusConflict, map[string]any{"error": err.Error()})
			return
		}
	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "op must be set, remove, or add"})
		return
	}

	writeJSON(w, http.StatusOK, models.MappingEditResponse{
		Mapping:         editor.Association(),
		AvailableFields: editor.AvailableFields(),
	})
}

func (h *Handler) saveMappings(w http.ResponseWriter, r *http.Request) {
	var req models.MappingSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid JSON body"})
		return
	}
	if strings.TrimSpace(req.ScenarioName) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "scenario name is required"})
		return
	}
	resp, err := h.mappings.Save(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) fields(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"vehicle_fields":     mapping.VehicleFields,
		"consignment_fields": mapping.ConsignmentFields,
	})
}

func (h *Handler) events(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.log.Snapshot())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
