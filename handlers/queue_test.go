// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/game-wheel/models"
	"github.com/danielhkuo/game-wheel/testutil"
)

func TestQueueLifecycle(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewQueueHandler(st)

	get := func() models.Queue {
		t.Helper()
		w := httptest.NewRecorder()
		handler.Get(w, testutil.MakeRequest("GET", "/api/queue", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
		var q models.Queue
		testutil.AssertJSON(t, w, &q)
		return q
	}

	if q := get(); q.Current != nil {
		t.Fatalf("Expected empty queue, got %q", *q.Current)
	}

	for _, game := range []string{"Catan", "Factorio"} {
		w := httptest.NewRecorder()
		handler.Set(w, testutil.MakeRequest("POST", "/api/queue", map[string]string{"game": game}, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	}
	if q := get(); q.Current == nil || *q.Current != "Factorio" {
		t.Errorf("Expected last set value Factorio, got %+v", q)
	}

	w := httptest.NewRecorder()
	handler.Clear(w, testutil.MakeRequest("DELETE", "/api/queue", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if body := strings.TrimSpace(w.Body.String()); body != `{"current":null}` {
		t.Errorf("Expected cleared queue body, got %s", body)
	}
	if q := get(); q.Current != nil {
		t.Errorf("Expected empty queue after clear, got %q", *q.Current)
	}
}

func TestSetQueueInvalid(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewQueueHandler(st)

	tests := []struct {
		name string
		body string
	}{
		{"missing game", `{}`},
		{"empty game", `{"game":""}`},
		{"null game", `{"game":null}`},
		{"non-string game", `{"game":7}`},
		{"malformed", `{game`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/queue", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.Set(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}
