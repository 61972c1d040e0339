// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the game lists, pending suggestions and the queue.

# Documents

Each concern is one JSON document, read and written whole:

	games        → models.GameList   (list name → ordered items)
	suggestions  → []models.Suggestion (pending only)
	queue        → models.Queue

# Backends

A Backend stores raw document bytes. OpenBackend selects one by type:

	file      → <DataDir>/<document>.json, written atomically via rename
	sqlite    → document table (modernc.org/sqlite)
	postgres  → document table (lib/pq)
	redis     → gamewheel:<document> keys (go-redis)

The client's offline cache uses the same Store over a FileBackend, so both
sides share one schema.

# Concurrency

Store serializes every read-modify-write with a single mutex. Approving a
suggestion writes the list before removing the suggestion; a failure
between the two leaves the suggestion pending and a retry is safe because
approval never adds a name twice. Writers in other processes are
last-write-wins.

Usage:

	backend, err := store.OpenBackend(ctx, store.Options{Type: "file", DataDir: "./data"})
	st := store.New(backend)
	err = st.Bootstrap(ctx, models.DefaultGameList())
	items, err := st.Lists.AddItem(ctx, "main", "Catan")
*/
package store
