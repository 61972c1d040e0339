// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the game-wheel API.

# Handler Types

Each handler is a struct over the shared *store.Store:

  - ListHandler: game lists (read, admin add/remove)
  - SuggestionHandler: submissions and admin approve/reject
  - QueueHandler: the single queued item
  - SpinHandler: trigger metadata and server-side spins
  - StaticHandler: front-end files with SPA fallback

	listHandler := handlers.NewListHandler(st)

# Lists

	GET    /api/games              → GetAll
	GET    /api/games/{type}       → GetList (404 if unknown)
	POST   /api/games/{type}       → AddItem (409 on duplicate)
	DELETE /api/games/{type}/{name} → RemoveItem (no-op if absent)

# Suggestions

	GET  /api/suggestions              → ListPending
	POST /api/suggestions              → Submit (201)
	POST /api/suggestions/{id}/approve → Approve
	POST /api/suggestions/{id}/reject  → Reject

Approval appends the name to its list and drops the suggestion. Both
responses carry the suggestion with its final status.

# Queue

	GET    /api/queue → {"current": string|null}
	POST   /api/queue → body {"game": "..."}
	DELETE /api/queue

# Spinning

	GET  /api/wheels/{type} → entries with isTrigger/redirectsTo
	GET  /api/triggers      → list → value → target
	POST /api/spin/{type}   → follows triggers, queues the final value

Errors are written by middleware.WriteError as {"error": message} with the
status taken from the apperr kind.
*/
package handlers
