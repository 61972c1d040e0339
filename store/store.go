// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/game-wheel/apperr"
	"github.com/danielhkuo/game-wheel/models"
)

// Store owns the three documents. Every read-modify-write runs under one
// mutex, so a suggestion approval (lists + suggestions) is never interleaved
// with another mutation in this process.
type Store struct {
	backend Backend
	mu      sync.Mutex
	now     func() time.Time
	newID   func() (string, error)

	Lists       *ListStore
	Suggestions *SuggestionStore
	Queue       *QueueStore
}

// New wraps backend. Call Bootstrap before serving requests.
func New(backend Backend) *Store {
	s := &Store{
		backend: backend,
		now:     time.Now,
		newID:   newSuggestionID,
	}
	s.Lists = &ListStore{s: s}
	s.Suggestions = &SuggestionStore{s: s}
	s.Queue = &QueueStore{s: s}
	return s
}

// newSuggestionID returns a UUIDv7: time-ordered and unique across processes.
func newSuggestionID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate suggestion ID: %w", err)
	}
	return id.String(), nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// Bootstrap writes any missing document: lists from defaults, an empty
// suggestion array and an empty queue. Existing documents are untouched.
func (s *Store) Bootstrap(ctx context.Context, defaults models.GameList) error {
	if err := models.ValidateGameList(defaults); err != nil {
		return fmt.Errorf("default lists: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	initial := map[Document]any{
		DocLists:       defaults,
		DocSuggestions: []models.Suggestion{},
		DocQueue:       models.Queue{},
	}
	for _, doc := range Documents {
		_, err := s.backend.Load(ctx, doc)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNoDocument) {
			return apperr.Storage("Failed to read "+string(doc), err)
		}
		if err := s.saveJSON(ctx, doc, initial[doc]); err != nil {
			return err
		}
		slog.Info("created default document", "document", doc)
	}
	return nil
}

// loadJSON decodes doc into v. Callers hold s.mu.
func (s *Store) loadJSON(ctx context.Context, doc Document, v any) error {
	data, err := s.backend.Load(ctx, doc)
	if err != nil {
		return apperr.Storage("Failed to read "+string(doc), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return apperr.Storage("Failed to parse "+string(doc), err)
	}
	return nil
}

// saveJSON persists v as doc. Callers hold s.mu.
func (s *Store) saveJSON(ctx context.Context, doc Document, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperr.Storage("Failed to encode "+string(doc), err)
	}
	if err := s.backend.Save(ctx, doc, data); err != nil {
		return apperr.Storage("Failed to save "+string(doc), err)
	}
	return nil
}
