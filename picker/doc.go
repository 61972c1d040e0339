// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package picker implements wheel selection.

Pick draws an index uniformly from [0, len(items)) and fails with
apperr.ErrEmptyList on an empty list. Randomness comes from math/rand/v2;
fairness is the only requirement, not unpredictability.

# Triggers

Some entries redirect instead of being a final result. Rules holds the
table (list → value → target list):

	rules, err := picker.NewRules(models.DefaultTriggers())
	outcome, err := p.Spin(lists, rules, "main")
	// outcome.Value is never a trigger; outcome.Path lists every hop

NewRules rejects self redirects and cycles between lists, so Spin always
terminates.
*/
package picker
