// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/game-wheel/cliparse"
	"github.com/danielhkuo/game-wheel/handlers"
	"github.com/danielhkuo/game-wheel/middleware"
	"github.com/danielhkuo/game-wheel/picker"
	"github.com/danielhkuo/game-wheel/store"
)

func NewRouter(st *store.Store, rules *picker.Rules, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	listHandler := handlers.NewListHandler(st)
	suggestionHandler := handlers.NewSuggestionHandler(st)
	queueHandler := handlers.NewQueueHandler(st)
	spinHandler := handlers.NewSpinHandler(st, picker.New(), rules)
	staticHandler := handlers.NewStaticHandler(cfg.StaticDir)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Game lists
	mux.HandleFunc("GET /api/games", middleware.WithLogging(listHandler.GetAll))
	mux.HandleFunc("GET /api/games/{type}", middleware.WithLogging(listHandler.GetList))
	mux.HandleFunc("POST /api/games/{type}", middleware.WithLogging(listHandler.AddItem))
	mux.HandleFunc("DELETE /api/games/{type}/{name}", middleware.WithLogging(listHandler.RemoveItem))

	// Suggestions
	mux.HandleFunc("GET /api/suggestions", middleware.WithLogging(suggestionHandler.ListPending))
	mux.HandleFunc("POST /api/suggestions", middleware.WithLogging(suggestionHandler.Submit))
	mux.HandleFunc("POST /api/suggestions/{id}/approve", middleware.WithLogging(suggestionHandler.Approve))
	mux.HandleFunc("POST /api/suggestions/{id}/reject", middleware.WithLogging(suggestionHandler.Reject))

	// Queue
	mux.HandleFunc("GET /api/queue", middleware.WithLogging(queueHandler.Get))
	mux.HandleFunc("POST /api/queue", middleware.WithLogging(queueHandler.Set))
	mux.HandleFunc("DELETE /api/queue", middleware.WithLogging(queueHandler.Clear))

	// Wheels and spinning
	mux.HandleFunc("GET /api/wheels/{type}", middleware.WithLogging(spinHandler.GetWheel))
	mux.HandleFunc("GET /api/triggers", middleware.WithLogging(spinHandler.GetTriggers))
	mux.HandleFunc("POST /api/spin/{type}", middleware.WithLogging(spinHandler.Spin))

	// Front-end with SPA fallback
	mux.Handle("GET /", staticHandler)

	return chimw.RequestID(chimw.Recoverer(middleware.CORS(mux)))
}
