// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"slices"
	"strings"

	"github.com/danielhkuo/game-wheel/apperr"
	"github.com/danielhkuo/game-wheel/models"
)

// Outcome is an admin decision on a pending suggestion.
type Outcome string

const (
	Approve Outcome = "approve"
	Reject  Outcome = "reject"
)

// SuggestionStore owns the pending suggestions document.
type SuggestionStore struct {
	s *Store
}

// ListPending returns pending suggestions in submission order.
func (ss *SuggestionStore) ListPending(ctx context.Context) ([]models.Suggestion, error) {
	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()
	return ss.load(ctx)
}

// Submit records a new pending suggestion for list typ.
// The duplicate check is advisory: it only sees the lists as they are now.
func (ss *SuggestionStore) Submit(ctx context.Context, typ, name string) (models.Suggestion, error) {
	name = strings.TrimSpace(name)
	if err := models.Validate(models.SuggestionRequest{Type: typ, Name: name}); err != nil {
		return models.Suggestion{}, err
	}

	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	lists, err := ss.s.Lists.load(ctx)
	if err != nil {
		return models.Suggestion{}, err
	}
	items, ok := lists[typ]
	if !ok {
		return models.Suggestion{}, apperr.InvalidArgument("Invalid game type")
	}
	if slices.Contains(items, name) {
		return models.Suggestion{}, apperr.Conflict("This item already exists in the list")
	}

	pending, err := ss.load(ctx)
	if err != nil {
		return models.Suggestion{}, err
	}
	for _, p := range pending {
		if p.Type == typ && p.Name == name {
			return models.Suggestion{}, apperr.Conflict("This item has already been suggested")
		}
	}

	id, err := ss.s.newID()
	if err != nil {
		return models.Suggestion{}, apperr.Storage("Failed to submit suggestion", err)
	}
	suggestion := models.Suggestion{
		ID:        id,
		Type:      typ,
		Name:      name,
		Timestamp: ss.s.now().UTC(),
		Status:    models.StatusPending,
	}
	if err := models.Validate(suggestion); err != nil {
		return models.Suggestion{}, err
	}

	pending = append(pending, suggestion)
	if err := ss.s.saveJSON(ctx, DocSuggestions, pending); err != nil {
		return models.Suggestion{}, err
	}
	return suggestion, nil
}

// Approve moves the suggestion into its list and removes it from pending.
func (ss *SuggestionStore) Approve(ctx context.Context, id string) (models.Suggestion, error) {
	return ss.Resolve(ctx, id, Approve)
}

// Reject discards the suggestion without touching any list.
func (ss *SuggestionStore) Reject(ctx context.Context, id string) (models.Suggestion, error) {
	return ss.Resolve(ctx, id, Reject)
}

// Resolve applies outcome to suggestion id and returns it with its final
// status. On approval the list is written first: if that fails the
// suggestion stays pending. If the item is already in the list (an earlier
// approval that failed to clear the suggestion, or an admin add) the list is
// left as is, so the name is never added twice.
func (ss *SuggestionStore) Resolve(ctx context.Context, id string, outcome Outcome) (models.Suggestion, error) {
	if outcome != Approve && outcome != Reject {
		return models.Suggestion{}, apperr.InvalidArgument("outcome must be approve or reject")
	}

	ss.s.mu.Lock()
	defer ss.s.mu.Unlock()

	pending, err := ss.load(ctx)
	if err != nil {
		return models.Suggestion{}, err
	}
	idx := slices.IndexFunc(pending, func(p models.Suggestion) bool { return p.ID == id })
	if idx < 0 {
		return models.Suggestion{}, apperr.NotFound("Suggestion not found")
	}
	suggestion := pending[idx]

	if outcome == Approve {
		lists, err := ss.s.Lists.load(ctx)
		if err != nil {
			return models.Suggestion{}, err
		}
		items, ok := lists[suggestion.Type]
		if !ok {
			return models.Suggestion{}, apperr.InvalidArgument("Invalid game type")
		}
		if !slices.Contains(items, suggestion.Name) {
			lists[suggestion.Type] = append(items, suggestion.Name)
			if err := ss.s.saveJSON(ctx, DocLists, lists); err != nil {
				return models.Suggestion{}, err
			}
		}
		suggestion.Status = models.StatusApproved
	} else {
		suggestion.Status = models.StatusRejected
	}

	pending = slices.Delete(pending, idx, idx+1)
	if err := ss.s.saveJSON(ctx, DocSuggestions, pending); err != nil {
		return models.Suggestion{}, err
	}
	return suggestion, nil
}

// load reads the document. Callers hold s.mu.
func (ss *SuggestionStore) load(ctx context.Context) ([]models.Suggestion, error) {
	var pending []models.Suggestion
	if err := ss.s.loadJSON(ctx, DocSuggestions, &pending); err != nil {
		return nil, err
	}
	if pending == nil {
		pending = []models.Suggestion{}
	}
	return pending, nil
}
