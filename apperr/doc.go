// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apperr defines the error taxonomy shared by the stores, the picker
and the HTTP layer.

# Kinds

	ErrInvalidArgument → 400  bad or missing input, unknown list type
	ErrNotFound        → 404  unknown suggestion id or list name
	ErrConflict        → 409  duplicate item
	ErrEmptyList       → 400  spin attempted on a list with no entries
	ErrStorage         → 500  underlying read/write failure

Construct errors with the helpers and test them with errors.Is:

	return apperr.Conflict("This item already exists in the list")

	if errors.Is(err, apperr.ErrConflict) { ... }

Status and Message turn any error into the HTTP status and the
{"error": message} body written by middleware.WriteError.
*/
package apperr
