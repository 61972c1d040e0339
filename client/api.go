// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/danielhkuo/game-wheel/models"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// API is a typed client for the game-wheel HTTP API. It never retries.
type API struct {
	baseURL string
	hc      *http.Client
}

// NewAPI returns a client for baseURL. hc defaults to http.DefaultClient.
func NewAPI(baseURL string, hc *http.Client) *API {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &API{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

func (a *API) Lists(ctx context.Context) (models.GameList, error) {
	var lists models.GameList
	err := a.do(ctx, http.MethodGet, "/api/games", nil, &lists)
	return lists, err
}

func (a *API) List(ctx context.Context, name string) ([]string, error) {
	var items []string
	err := a.do(ctx, http.MethodGet, "/api/games/"+url.PathEscape(name), nil, &items)
	return items, err
}

func (a *API) AddItem(ctx context.Context, list, name string) ([]string, error) {
	var items []string
	err := a.do(ctx, http.MethodPost, "/api/games/"+url.PathEscape(list), models.AddItemRequest{Name: name}, &items)
	return items, err
}

func (a *API) RemoveItem(ctx context.Context, list, name string) ([]string, error) {
	var items []string
	err := a.do(ctx, http.MethodDelete, "/api/games/"+url.PathEscape(list)+"/"+url.PathEscape(name), nil, &items)
	return items, err
}

func (a *API) Triggers(ctx context.Context) (map[string]map[string]string, error) {
	var triggers map[string]map[string]string
	err := a.do(ctx, http.MethodGet, "/api/triggers", nil, &triggers)
	return triggers, err
}

func (a *API) Suggestions(ctx context.Context) ([]models.Suggestion, error) {
	var pending []models.Suggestion
	err := a.do(ctx, http.MethodGet, "/api/suggestions", nil, &pending)
	return pending, err
}

func (a *API) Suggest(ctx context.Context, typ, name string) (models.Suggestion, error) {
	var s models.Suggestion
	err := a.do(ctx, http.MethodPost, "/api/suggestions", models.SuggestionRequest{Type: typ, Name: name}, &s)
	return s, err
}

func (a *API) Approve(ctx context.Context, id string) (models.Suggestion, error) {
	return a.resolve(ctx, id, "approve")
}

func (a *API) Reject(ctx context.Context, id string) (models.Suggestion, error) {
	return a.resolve(ctx, id, "reject")
}

func (a *API) resolve(ctx context.Context, id, action string) (models.Suggestion, error) {
	var resp models.ResolveResponse
	err := a.do(ctx, http.MethodPost, "/api/suggestions/"+url.PathEscape(id)+"/"+action, nil, &resp)
	return resp.Suggestion, err
}

func (a *API) Queue(ctx context.Context) (models.Queue, error) {
	var q models.Queue
	err := a.do(ctx, http.MethodGet, "/api/queue", nil, &q)
	return q, err
}

func (a *API) SetQueue(ctx context.Context, item string) (models.Queue, error) {
	var q models.Queue
	err := a.do(ctx, http.MethodPost, "/api/queue", models.QueueRequest{Game: &item}, &q)
	return q, err
}

func (a *API) ClearQueue(ctx context.Context) (models.Queue, error) {
	var q models.Queue
	err := a.do(ctx, http.MethodDelete, "/api/queue", nil, &q)
	return q, err
}

// do sends one request and decodes a 2xx JSON body into out.
func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
