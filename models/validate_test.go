// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/game-wheel/apperr"
)

func TestValidateRequests(t *testing.T) {
	empty := ""
	game := "Terraria"

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"valid suggestion request", SuggestionRequest{Type: "main", Name: "Factorio"}, false},
		{"missing type", SuggestionRequest{Name: "Factorio"}, true},
		{"missing name", SuggestionRequest{Type: "main"}, true},
		{"valid queue request", QueueRequest{Game: &game}, false},
		{"nil game", QueueRequest{}, true},
		{"empty game", QueueRequest{Game: &empty}, true},
		{"valid add item", AddItemRequest{Name: "Catan"}, false},
		{"empty add item", AddItemRequest{}, true},
		{"valid suggestion", Suggestion{ID: "1", Type: "main", Name: "A", Timestamp: time.Now(), Status: StatusPending}, false},
		{"bad status", Suggestion{ID: "1", Type: "main", Name: "A", Status: "maybe"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperr.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestValidateGameList(t *testing.T) {
	tests := []struct {
		name    string
		lists   GameList
		wantErr bool
	}{
		{"defaults", DefaultGameList(), false},
		{"empty list allowed", GameList{"main": {}}, false},
		{"nil document", nil, true},
		{"duplicate item", GameList{"main": {"A", "B", "A"}}, true},
		{"empty item", GameList{"main": {"A", ""}}, true},
		{"blank list name", GameList{" ": {"A"}}, true},
		{"case sensitive names are distinct", GameList{"main": {"a", "A"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGameList(tt.lists)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGameList() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGameListClone(t *testing.T) {
	orig := GameList{"main": {"A", "B"}}
	clone := orig.Clone()
	clone["main"][0] = "Z"
	clone["movies"] = []string{"M1"}

	if orig["main"][0] != "A" {
		t.Error("Clone shares item slices with original")
	}
	if _, ok := orig["movies"]; ok {
		t.Error("Clone shares map with original")
	}
}
