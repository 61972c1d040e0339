// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package picker

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/danielhkuo/game-wheel/models"
)

var ErrTriggerCycle = errors.New("trigger cycle")

// Rules maps list → trigger value → target list.
// A nil *Rules has no triggers.
type Rules struct {
	targets map[string]map[string]string
}

// NewRules validates triggers and returns them as Rules. Self redirects and
// any cycle in the list graph are rejected, so a spin redirects at most
// MaxHops times.
func NewRules(triggers map[string]map[string]string) (*Rules, error) {
	targets := make(map[string]map[string]string, len(triggers))
	for list, values := range triggers {
		if list == "" {
			return nil, errors.New("trigger list name is required")
		}
		m := make(map[string]string, len(values))
		for value, target := range values {
			if value == "" || target == "" {
				return nil, fmt.Errorf("list %q: trigger value and target are required", list)
			}
			if target == list {
				return nil, fmt.Errorf("list %q: %q redirects to itself: %w", list, value, ErrTriggerCycle)
			}
			m[value] = target
		}
		targets[list] = m
	}

	r := &Rules{targets: targets}
	if err := r.checkAcyclic(); err != nil {
		return nil, err
	}
	return r, nil
}

// checkAcyclic runs a DFS over list → target edges.
func (r *Rules) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int)

	var visit func(list string) error
	visit = func(list string) error {
		switch state[list] {
		case visiting:
			return fmt.Errorf("list %q is reachable from itself: %w", list, ErrTriggerCycle)
		case done:
			return nil
		}
		state[list] = visiting
		for _, target := range slices.Sorted(maps.Values(r.targets[list])) {
			if err := visit(target); err != nil {
				return err
			}
		}
		state[list] = done
		return nil
	}

	for _, list := range slices.Sorted(maps.Keys(r.targets)) {
		if err := visit(list); err != nil {
			return err
		}
	}
	return nil
}

// Target reports where value redirects when picked from list.
func (r *Rules) Target(list, value string) (string, bool) {
	if r == nil {
		return "", false
	}
	target, ok := r.targets[list][value]
	return target, ok
}

// MaxHops bounds the number of redirects in one spin.
func (r *Rules) MaxHops() int {
	if r == nil {
		return 0
	}
	return len(r.targets)
}

// Entries annotates items of list with their trigger metadata.
func (r *Rules) Entries(list string, items []string) []models.Entry {
	entries := make([]models.Entry, len(items))
	for i, item := range items {
		entries[i] = models.Entry{Value: item}
		if target, ok := r.Target(list, item); ok {
			entries[i].IsTrigger = true
			entries[i].RedirectsTo = target
		}
	}
	return entries
}

// Map returns a copy of the trigger table.
func (r *Rules) Map() map[string]map[string]string {
	out := make(map[string]map[string]string)
	if r == nil {
		return out
	}
	for list, values := range r.targets {
		out[list] = maps.Clone(values)
	}
	return out
}
