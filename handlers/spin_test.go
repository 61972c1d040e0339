// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/danielhkuo/game-wheel/models"
	"github.com/danielhkuo/game-wheel/picker"
	"github.com/danielhkuo/game-wheel/testutil"
)

func newTestSpinHandler(t *testing.T, lists models.GameList, triggers map[string]map[string]string) *SpinHandler {
	t.Helper()
	st := testutil.SetupTestStoreWith(t, lists)
	rules, err := picker.NewRules(triggers)
	if err != nil {
		t.Fatalf("NewRules failed: %v", err)
	}
	return NewSpinHandler(st, picker.NewWithSource(rand.NewPCG(3, 4)), rules)
}

func TestSpinQueuesTerminalValue(t *testing.T) {
	lists := models.GameList{"main": {"A", "B", "Movie Time"}, "movies": {"M1", "M2"}}
	handler := newTestSpinHandler(t, lists, map[string]map[string]string{"main": {"Movie Time": "movies"}})

	sawRedirect := false
	for range 100 {
		req := testutil.MakeRequest("POST", "/api/spin/main", nil, nil)
		req.SetPathValue("type", "main")
		w := httptest.NewRecorder()

		handler.Spin(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var out models.SpinOutcome
		testutil.AssertJSON(t, w, &out)

		if out.Value == "Movie Time" {
			t.Fatal("Trigger must never be the final value")
		}
		if len(out.Path) > 1 {
			sawRedirect = true
			if !slices.Contains(lists["movies"], out.Value) {
				t.Errorf("Expected M1 or M2 after redirect, got %q", out.Value)
			}
		}

		q, err := handler.st.Queue.Get(context.Background())
		if err != nil {
			t.Fatalf("Queue.Get failed: %v", err)
		}
		if q.Current == nil || *q.Current != out.Value {
			t.Errorf("Expected queue %q, got %+v", out.Value, q.Current)
		}
	}
	if !sawRedirect {
		t.Error("Expected at least one redirect in 100 spins")
	}
}

func TestSpinErrors(t *testing.T) {
	handler := newTestSpinHandler(t, models.GameList{"main": {}}, nil)

	tests := []struct {
		name           string
		listType       string
		expectedStatus int
	}{
		{"empty list", "main", http.StatusBadRequest},
		{"unknown list", "books", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/spin/"+tt.listType, nil, nil)
			req.SetPathValue("type", tt.listType)
			w := httptest.NewRecorder()

			handler.Spin(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestGetWheelAndTriggers(t *testing.T) {
	handler := newTestSpinHandler(t, models.DefaultGameList(), models.DefaultTriggers())

	req := testutil.MakeRequest("GET", "/api/wheels/main", nil, nil)
	req.SetPathValue("type", "main")
	w := httptest.NewRecorder()
	handler.GetWheel(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var entries []models.Entry
	testutil.AssertJSON(t, w, &entries)

	triggers := 0
	for _, e := range entries {
		if e.IsTrigger {
			triggers++
			if e.Value == "Movie Time" && e.RedirectsTo != "movies" {
				t.Errorf("Movie Time should redirect to movies, got %q", e.RedirectsTo)
			}
		}
	}
	if triggers != 2 {
		t.Errorf("Expected 2 triggers on main, got %d", triggers)
	}

	w = httptest.NewRecorder()
	handler.GetTriggers(w, testutil.MakeRequest("GET", "/api/triggers", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var table map[string]map[string]string
	testutil.AssertJSON(t, w, &table)
	if table["main"]["TV Time"] != "tv" {
		t.Errorf("Unexpected trigger table %v", table)
	}
}
