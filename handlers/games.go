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

type ListHandler struct {
	st *store.Store
}

func NewListHandler(st *store.Store) *ListHandler {
	return &ListHandler{st: st}
}

// GetAll handles GET /api/games
func (h *ListHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	lists, err := h.st.Lists.GetAll(r.Context())
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, lists)
}

// GetList handles GET /api/games/{type}
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	items, err := h.st.Lists.GetList(r.Context(), r.PathValue("type"))
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, items)
}

// AddItem handles POST /api/games/{type}
func (h *ListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	listName := r.PathValue("type")

	var req models.AddItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	items, err := h.st.Lists.AddItem(r.Context(), listName, req.Name)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	slog.Info("item added", "list", listName, "name", req.Name)
	middleware.JSONResponse(w, http.StatusCreated, items)
}

// RemoveItem handles DELETE /api/games/{type}/{name}
func (h *ListHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	listName := r.PathValue("type")
	name := r.PathValue("name")

	items, err := h.st.Lists.RemoveItem(r.Context(), listName, name)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	slog.Info("item removed", "list", listName, "name", name)
	middleware.JSONResponse(w, http.StatusOK, items)
}
