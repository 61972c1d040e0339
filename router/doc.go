// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the game-wheel API.

# Route Registration

NewRouter builds an http.ServeMux with every endpoint and wraps it with
chi's RequestID and Recoverer middleware and the local CORS middleware:

	handler := router.NewRouter(st, rules, cfg)

# Endpoints

Health:

	GET /health

Game lists:

	GET    /api/games
	GET    /api/games/{type}
	POST   /api/games/{type}
	DELETE /api/games/{type}/{name}

Suggestions:

	GET  /api/suggestions
	POST /api/suggestions
	POST /api/suggestions/{id}/approve
	POST /api/suggestions/{id}/reject

Queue:

	GET    /api/queue
	POST   /api/queue
	DELETE /api/queue

Wheels:

	GET  /api/wheels/{type}
	GET  /api/triggers
	POST /api/spin/{type}

Any other GET serves the front-end from cfg.StaticDir, falling back to
index.html, or a plain banner when no front-end is installed.
*/
package router
