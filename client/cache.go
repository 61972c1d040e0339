// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"

	"github.com/danielhkuo/game-wheel/models"
	"github.com/danielhkuo/game-wheel/store"
)

// LocalCache is the offline copy of the three documents. It is a regular
// store.Store over a FileBackend, so it validates exactly like the server.
type LocalCache struct {
	*store.Store
	dir string
}

// OpenLocalCache opens (and seeds with defaults, if empty) the cache in dir.
func OpenLocalCache(ctx context.Context, dir string) (*LocalCache, error) {
	backend, err := store.NewFileBackend(dir)
	if err != nil {
		return nil, err
	}
	st := store.New(backend)
	if err := st.Bootstrap(ctx, models.DefaultGameList()); err != nil {
		return nil, err
	}
	return &LocalCache{Store: st, dir: dir}, nil
}

func (c *LocalCache) Dir() string {
	return c.dir
}
