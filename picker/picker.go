// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package picker

import (
	"math/rand/v2"
	"sync"

	"github.com/danielhkuo/game-wheel/apperr"
	"github.com/danielhkuo/game-wheel/models"
)

// Picker draws uniformly random entries. The zero value uses the global
// math/rand/v2 source and is safe for concurrent use.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Picker backed by the global source.
func New() *Picker {
	return &Picker{}
}

// NewWithSource returns a Picker drawing from src. Used for reproducible
// tests; calls are serialized since rand.Rand is not goroutine-safe.
func NewWithSource(src rand.Source) *Picker {
	return &Picker{rng: rand.New(src)}
}

func (p *Picker) intN(n int) int {
	if p.rng == nil {
		return rand.IntN(n)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n)
}

// Pick returns a uniformly chosen index and value from items.
// The List field of the result is left for the caller to fill.
func (p *Picker) Pick(items []string) (models.SpinResult, error) {
	if len(items) == 0 {
		return models.SpinResult{}, apperr.EmptyList("No items to spin")
	}
	i := p.intN(len(items))
	return models.SpinResult{Index: i, Value: items[i]}, nil
}

// Spin picks from lists[start] and follows trigger redirects until it lands
// on a terminal value. rules may be nil.
func (p *Picker) Spin(lists models.GameList, rules *Rules, start string) (models.SpinOutcome, error) {
	var path []models.SpinResult
	current := start

	for hop := 0; ; hop++ {
		items, ok := lists[current]
		if !ok {
			return models.SpinOutcome{}, apperr.NotFound("Game list not found")
		}
		res, err := p.Pick(items)
		if err != nil {
			return models.SpinOutcome{}, err
		}
		res.List = current
		path = append(path, res)

		target, ok := rules.Target(current, res.Value)
		if !ok {
			return models.SpinOutcome{SpinResult: res, Path: path}, nil
		}
		// Unreachable for rules built by NewRules, which rejects cycles.
		if hop >= rules.MaxHops() {
			return models.SpinOutcome{}, apperr.New(apperr.ErrInvalidArgument, "trigger chain does not terminate", ErrTriggerCycle)
		}
		current = target
	}
}
