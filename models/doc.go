// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the documents, request and response types for the
game wheel API.

# Documents

Three independent JSON documents are persisted:

  - GameList: list name → ordered, unique item names
  - []Suggestion: pending user additions (id, type, name, timestamp, status)
  - Queue: {"current": string|null}

# Request Types

  - AddItemRequest: name
  - SuggestionRequest: type, name
  - QueueRequest: game

# Response Types

  - ResolveResponse: success, suggestion
  - SpinOutcome: list, index, value, path
  - ErrorResponse: error

# Trigger Metadata

Entry describes one list item together with its trigger metadata
(isTrigger, redirectsTo). DefaultTriggers holds the built-in redirections
("Movie Time" → movies, "TV Time" → tv).

# Validation

Validate and ValidateGameList are the one schema check shared by the API
and the client's local fallback cache. Failures are apperr.ErrInvalidArgument.
*/
package models
