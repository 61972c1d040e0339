// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/game-wheel/apperr"
	"github.com/danielhkuo/game-wheel/models"
	"github.com/danielhkuo/game-wheel/picker"
	"github.com/danielhkuo/game-wheel/store"
)

// Controller drives the API, the local cache and the picker. Every
// operation makes at most one API call. A failed read is answered by the
// local cache; a failed write falls back only when the server never judged it.
type Controller struct {
	api    *API
	cache  *LocalCache
	picker *picker.Picker
}

func NewController(api *API, cache *LocalCache, p *picker.Picker) *Controller {
	return &Controller{api: api, cache: cache, picker: p}
}

// readFallback reports whether a failed read should be served from the
// local cache. Any API failure qualifies except cancellation.
func readFallback(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled)
}

// fallback reports whether a failed write should be absorbed by the local
// cache. Transport failures and 5xx do; 4xx are the caller's mistake and don't.
func fallback(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusInternalServerError
	}
	return true
}

// asDomainError maps a 4xx APIError onto the apperr kind the server used,
// so callers see the same errors online and offline.
func asDomainError(err error) error {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.Status {
	case http.StatusNotFound:
		return apperr.New(apperr.ErrNotFound, apiErr.Message, err)
	case http.StatusConflict:
		return apperr.New(apperr.ErrConflict, apiErr.Message, err)
	case http.StatusBadRequest:
		return apperr.New(apperr.ErrInvalidArgument, apiErr.Message, err)
	}
	return err
}

func logFallback(op string, err error) {
	slog.Warn("API unavailable, using local cache", "op", op, "error", err)
}

// Load fetches lists and trigger rules into sess. Online data also
// refreshes the cache so the next offline start sees it.
func (c *Controller) Load(ctx context.Context, sess *Session) error {
	lists, err := c.api.Lists(ctx)
	if err != nil {
		if !readFallback(err) {
			return err
		}
		logFallback("load", err)
		lists, err = c.cache.Lists.GetAll(ctx)
		if err != nil {
			return err
		}
		rules, err := picker.NewRules(models.DefaultTriggers())
		if err != nil {
			return err
		}
		sess.loaded(lists, rules, true)
		return nil
	}

	if err := c.cache.Lists.ReplaceAll(ctx, lists); err != nil {
		slog.Warn("failed to refresh local cache", "error", err)
	}

	rules, err := c.loadRules(ctx)
	if err != nil {
		return err
	}
	sess.loaded(lists, rules, false)
	return nil
}

func (c *Controller) loadRules(ctx context.Context) (*picker.Rules, error) {
	triggers, err := c.api.Triggers(ctx)
	if err != nil {
		slog.Warn("trigger table unavailable, using defaults", "error", err)
		return picker.NewRules(models.DefaultTriggers())
	}
	rules, err := picker.NewRules(triggers)
	if err != nil {
		slog.Warn("server trigger table rejected, using defaults", "error", err)
		return picker.NewRules(models.DefaultTriggers())
	}
	return rules, nil
}

// SwitchList makes name the active list. Rejected while spinning.
func (c *Controller) SwitchList(sess *Session, name string) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.state == Spinning {
		return ErrAlreadySpinning
	}
	if _, ok := sess.lists[name]; !ok {
		return apperr.NotFound("Game list not found")
	}
	sess.active = name
	return nil
}

// Spin picks from the active list, following triggers, and queues the final
// value. The queue write goes to the API and always to the cache. A trigger
// leaves the session on the list it redirected to.
func (c *Controller) Spin(ctx context.Context, sess *Session) (models.SpinOutcome, error) {
	if err := sess.beginSpin(); err != nil {
		return models.SpinOutcome{}, err
	}
	defer sess.endSpin()

	if sess.Lists() == nil {
		if err := c.Load(ctx, sess); err != nil {
			return models.SpinOutcome{}, err
		}
	}

	sess.mu.Lock()
	lists, rules, start := sess.lists, sess.rules, sess.active
	sess.mu.Unlock()

	outcome, err := c.picker.Spin(lists, rules, start)
	if err != nil {
		return models.SpinOutcome{}, err
	}

	sess.mu.Lock()
	sess.active = outcome.List
	sess.mu.Unlock()

	if _, err := c.api.SetQueue(ctx, outcome.Value); err != nil {
		logFallback("queue", err)
	}
	if _, err := c.cache.Queue.Set(ctx, outcome.Value); err != nil {
		slog.Warn("failed to write local queue", "error", err)
	}
	return outcome, nil
}

// Queued returns the queued item, API first.
func (c *Controller) Queued(ctx context.Context) (models.Queue, error) {
	q, err := c.api.Queue(ctx)
	if err == nil {
		return q, nil
	}
	if !readFallback(err) {
		return models.Queue{}, err
	}
	logFallback("queue", err)
	return c.cache.Queue.Get(ctx)
}

// ClearQueue clears the API queue and the cached one.
func (c *Controller) ClearQueue(ctx context.Context) error {
	if _, err := c.api.ClearQueue(ctx); err != nil {
		logFallback("clear queue", err)
	}
	_, err := c.cache.Queue.Clear(ctx)
	return err
}

// Suggest submits a suggestion. Validation failures from the server are
// returned; an unreachable server records it in the cache instead.
func (c *Controller) Suggest(ctx context.Context, typ, name string) (models.Suggestion, error) {
	s, err := c.api.Suggest(ctx, typ, name)
	if err == nil {
		return s, nil
	}
	if !fallback(err) {
		return models.Suggestion{}, asDomainError(err)
	}
	logFallback("suggest", err)
	return c.cache.Suggestions.Submit(ctx, typ, name)
}

func (c *Controller) Pending(ctx context.Context) ([]models.Suggestion, error) {
	pending, err := c.api.Suggestions(ctx)
	if err == nil {
		return pending, nil
	}
	if !readFallback(err) {
		return nil, err
	}
	logFallback("pending", err)
	return c.cache.Suggestions.ListPending(ctx)
}

func (c *Controller) Approve(ctx context.Context, id string) (models.Suggestion, error) {
	return c.resolve(ctx, id, store.Approve)
}

func (c *Controller) Reject(ctx context.Context, id string) (models.Suggestion, error) {
	return c.resolve(ctx, id, store.Reject)
}

func (c *Controller) resolve(ctx context.Context, id string, outcome store.Outcome) (models.Suggestion, error) {
	var (
		s   models.Suggestion
		err error
	)
	if outcome == store.Approve {
		s, err = c.api.Approve(ctx, id)
	} else {
		s, err = c.api.Reject(ctx, id)
	}
	if err == nil {
		return s, nil
	}
	if !fallback(err) {
		return models.Suggestion{}, asDomainError(err)
	}
	logFallback(string(outcome), err)
	return c.cache.Suggestions.Resolve(ctx, id, outcome)
}
