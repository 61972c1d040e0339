// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/game-wheel/middleware"
	"github.com/danielhkuo/game-wheel/models"
	"github.com/danielhkuo/game-wheel/store"
)

type SuggestionHandler struct {
	st *store.Store
}

func NewSuggestionHandler(st *store.Store) *SuggestionHandler {
	return &SuggestionHandler{st: st}
}

// ListPending handles GET /api/suggestions
func (h *SuggestionHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.st.Suggestions.ListPending(r.Context())
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, pending)
}

// Submit handles POST /api/suggestions
func (h *SuggestionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SuggestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	suggestion, err := h.st.Suggestions.Submit(r.Context(), req.Type, req.Name)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	slog.Info("suggestion submitted", "id", suggestion.ID, "type", suggestion.Type, "name", suggestion.Name)
	middleware.JSONResponse(w, http.StatusCreated, suggestion)
}

// Approve handles POST /api/suggestions/{id}/approve
func (h *SuggestionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, store.Approve)
}

// Reject handles POST /api/suggestions/{id}/reject
func (h *SuggestionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, store.Reject)
}

func (h *SuggestionHandler) resolve(w http.ResponseWriter, r *http.Request, outcome store.Outcome) {
	id := r.PathValue("id")

	suggestion, err := h.st.Suggestions.Resolve(r.Context(), id, outcome)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	slog.Info("suggestion resolved", "id", id, "outcome", outcome, "type", suggestion.Type, "name", suggestion.Name)
	middleware.JSONResponse(w, http.StatusOK, models.ResolveResponse{
		Success:    true,
		Suggestion: suggestion,
	})
}
