// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Built-in list names
const (
	ListMain     = "main"
	ListMovies   = "movies"
	ListTV       = "tv"
	ListTabletop = "tabletop"
)

// Suggestion status constants. Resolved suggestions are deleted, so
// approved/rejected only appear in resolve responses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Domain types

// GameList maps a list name to its ordered, duplicate-free items.
type GameList map[string][]string

// Clone returns a deep copy so callers can't mutate cached state.
func (g GameList) Clone() GameList {
	out := make(GameList, len(g))
	for name, items := range g {
		out[name] = append([]string{}, items...)
	}
	return out
}

type Suggestion struct {
	ID        string    `json:"id" validate:"required"`
	Type      string    `json:"type" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status" validate:"oneof=pending approved rejected"`
}

// Queue is the single "currently queued" slot. Current is nil when empty.
type Queue struct {
	Current *string `json:"current"`
}

// Entry is one list item with its trigger metadata.
type Entry struct {
	Value       string `json:"value"`
	IsTrigger   bool   `json:"isTrigger"`
	RedirectsTo string `json:"redirectsTo,omitempty"`
}

// Request types

type AddItemRequest struct {
	Name string `json:"name" validate:"required"`
}

type SuggestionRequest struct {
	Type string `json:"type" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type QueueRequest struct {
	Game *string `json:"game" validate:"required,min=1"`
}

// Response types

type ResolveResponse struct {
	Success    bool       `json:"success"`
	Suggestion Suggestion `json:"suggestion"`
}

// SpinResult is a single pick from one list.
type SpinResult struct {
	List  string `json:"list"`
	Index int    `json:"index"`
	Value string `json:"value"`
}

// SpinOutcome is the terminal pick plus every hop taken through triggers.
type SpinOutcome struct {
	SpinResult
	Path []SpinResult `json:"path"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
