// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the game-wheel API server.

Game Wheel is a party picker: spin a wheel to choose a game, movie, TV show
or tabletop game from curated lists, suggest new entries for admin review,
and keep the last pick in a one-slot queue. Some entries ("Movie Time",
"TV Time") are triggers that redirect the spin to another list.

# Starting the Server

With no configuration the server keeps JSON documents in ./data:

	go run main.go

Or with another store:

	go run main.go -t sqlite -d ./wheel.db
	go run main.go -t redis -redis redis://localhost:6379/0

# Configuration

  - PORT (-p): Server port (default: 3000)
  - STORE_TYPE (-t): file, sqlite, postgres or redis (default: file)
  - DATA_DIR (-data): Document directory for the file store
  - DATABASE_URL (-d): sqlite path or postgres URL
  - REDIS_URL (-redis): Redis URL
  - STATIC_DIR (-static): Front-end directory (default: ./public)
  - DEBUG (-debug): Debug logging

A .env file in the working directory is loaded first.

# Architecture

  - handlers: HTTP request handlers (lists, suggestions, queue, spin, static)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON and error helpers
  - store: Documents and their backends
  - picker: Random selection and trigger rules
  - models: Shared document types and validation
  - apperr: Error kinds and HTTP status mapping
  - db: SQL schema
  - cliparse: Configuration parsing
  - client, cmd/wheel: API client with offline fallback, and the CLI

See package documentation for each component.
*/
package main
