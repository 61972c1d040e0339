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

// ListStore owns the games document.
type ListStore struct {
	s *Store
}

func (l *ListStore) GetAll(ctx context.Context) (models.GameList, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return l.load(ctx)
}

// GetList returns one list, or ErrNotFound if name is unknown.
func (l *ListStore) GetList(ctx context.Context, name string) ([]string, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	lists, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	items, ok := lists[name]
	if !ok {
		return nil, apperr.NotFound("Game list not found")
	}
	return items, nil
}

// AddItem appends item to the named list and returns the updated list.
func (l *ListStore) AddItem(ctx context.Context, name, item string) ([]string, error) {
	item = strings.TrimSpace(item)
	if err := models.Validate(models.AddItemRequest{Name: item}); err != nil {
		return nil, err
	}

	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	lists, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	items, ok := lists[name]
	if !ok {
		return nil, apperr.InvalidArgument("Invalid game type")
	}
	if slices.Contains(items, item) {
		return nil, apperr.Conflict("This item already exists in the list")
	}

	lists[name] = append(items, item)
	if err := l.s.saveJSON(ctx, DocLists, lists); err != nil {
		return nil, err
	}
	return lists[name], nil
}

// RemoveItem deletes item from the named list. Removing an absent item is a
// no-op and does not rewrite the document.
func (l *ListStore) RemoveItem(ctx context.Context, name, item string) ([]string, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	lists, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	items, ok := lists[name]
	if !ok {
		return nil, apperr.InvalidArgument("Invalid game type")
	}
	idx := slices.Index(items, item)
	if idx < 0 {
		return items, nil
	}

	lists[name] = slices.Delete(items, idx, idx+1)
	if err := l.s.saveJSON(ctx, DocLists, lists); err != nil {
		return nil, err
	}
	return lists[name], nil
}

// ReplaceAll overwrites the whole document after validating it.
func (l *ListStore) ReplaceAll(ctx context.Context, lists models.GameList) error {
	if err := models.ValidateGameList(lists); err != nil {
		return err
	}

	l.s.mu.Lock()
	defer l.s.mu.Unlock()
	return l.s.saveJSON(ctx, DocLists, lists)
}

// load reads the document. Callers hold s.mu.
func (l *ListStore) load(ctx context.Context) (models.GameList, error) {
	var lists models.GameList
	if err := l.s.loadJSON(ctx, DocLists, &lists); err != nil {
		return nil, err
	}
	if lists == nil {
		lists = models.GameList{}
	}
	return lists, nil
}
