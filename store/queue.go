// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/game-wheel/models"
)

// QueueStore owns the single queued-item slot. Writes overwrite, no history.
type QueueStore struct {
	s *Store
}

func (q *QueueStore) Get(ctx context.Context) (models.Queue, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()

	var queue models.Queue
	if err := q.s.loadJSON(ctx, DocQueue, &queue); err != nil {
		return models.Queue{}, err
	}
	return queue, nil
}

// Set replaces the queued item. item must be non-empty.
func (q *QueueStore) Set(ctx context.Context, item string) (models.Queue, error) {
	if err := models.Validate(models.QueueRequest{Game: &item}); err != nil {
		return models.Queue{}, err
	}

	q.s.mu.Lock()
	defer q.s.mu.Unlock()

	queue := models.Queue{Current: &item}
	if err := q.s.saveJSON(ctx, DocQueue, queue); err != nil {
		return models.Queue{}, err
	}
	return queue, nil
}

func (q *QueueStore) Clear(ctx context.Context) (models.Queue, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()

	queue := models.Queue{}
	if err := q.s.saveJSON(ctx, DocQueue, queue); err != nil {
		return models.Queue{}, err
	}
	return queue, nil
}
