// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/game-wheel/middleware"
	"github.com/danielhkuo/game-wheel/picker"
	"github.com/danielhkuo/game-wheel/store"
)

// SpinHandler serves trigger metadata and server-side spins.
type SpinHandler struct {
	st     *store.Store
	picker *picker.Picker
	rules  *picker.Rules
}

func NewSpinHandler(st *store.Store, p *picker.Picker, rules *picker.Rules) *SpinHandler {
	return &SpinHandler{st: st, picker: p, rules: rules}
}

// GetWheel handles GET /api/wheels/{type}
func (h *SpinHandler) GetWheel(w http.ResponseWriter, r *http.Request) {
	listName := r.PathValue("type")

	items, err := h.st.Lists.GetList(r.Context(), listName)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, h.rules.Entries(listName, items))
}

// GetTriggers handles GET /api/triggers
func (h *SpinHandler) GetTriggers(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.rules.Map())
}

// Spin handles POST /api/spin/{type}. The terminal value is queued before
// responding; trigger values are never queued.
func (h *SpinHandler) Spin(w http.ResponseWriter, r *http.Request) {
	listName := r.PathValue("type")

	lists, err := h.st.Lists.GetAll(r.Context())
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	outcome, err := h.picker.Spin(lists, h.rules, listName)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	if _, err := h.st.Queue.Set(r.Context(), outcome.Value); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	slog.Info("spin completed", "list", outcome.List, "value", outcome.Value, "hops", len(outcome.Path)-1)
	middleware.JSONResponse(w, http.StatusOK, outcome)
}
