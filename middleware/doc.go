// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/games", middleware.WithLogging(handler))

Logs request start at Debug and completion (status, request_id,
duration_ms) at Info. The request ID comes from chi's RequestID middleware
when the router installs it.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows GET, POST, DELETE and OPTIONS from any origin.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Domain errors go through WriteError, which picks the status from the
apperr kind and writes {"error": message}:

	var req models.QueueRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Honors X-Forwarded-For and X-Real-IP; used in request logs.
*/
package middleware
