// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/game-wheel/middleware"
	"github.com/danielhkuo/game-wheel/models"
	"github.com/danielhkuo/game-wheel/store"
)

type QueueHandler struct {
	st *store.Store
}

func NewQueueHandler(st *store.Store) *QueueHandler {
	return &QueueHandler{st: st}
}

// Get handles GET /api/queue
func (h *QueueHandler) Get(w http.ResponseWriter, r *http.Request) {
	queue, err := h.st.Queue.Get(r.Context())
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, queue)
}

// Set handles POST /api/queue
func (h *QueueHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req models.QueueRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, err)
		return
	}
	if err := models.Validate(req); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	queue, err := h.st.Queue.Set(r.Context(), *req.Game)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, queue)
}

// Clear handles DELETE /api/queue
func (h *QueueHandler) Clear(w http.ResponseWriter, r *http.Request) {
	queue, err := h.st.Queue.Clear(r.Context())
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, queue)
}
