// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client talks to the game-wheel API and keeps working without it.

API is a thin typed HTTP client. LocalCache is a store.Store over a
FileBackend in the user's cache directory, seeded with the default lists.
Controller combines them: each operation tries the API once and, on a
transport error or 5xx, answers from the cache. 4xx answers are returned
as apperr errors. There are no retries.

Queue writes always land in the cache too, whether or not the API took
them.

Session holds the state a front-end keeps between actions: the active
list, the loaded lists and trigger rules, and whether a spin is running.
A second Spin while one is in flight fails with ErrAlreadySpinning.

	api := client.NewAPI("http://localhost:3000", nil)
	cache, err := client.OpenLocalCache(ctx, dir)
	ctrl := client.NewController(api, cache, picker.New())
	sess := client.NewSession("main")
	outcome, err := ctrl.Spin(ctx, sess)
*/
package client
