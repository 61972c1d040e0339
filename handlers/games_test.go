// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/danielhkuo/game-wheel/models"
	"github.com/danielhkuo/game-wheel/testutil"
)

func TestGetAllLists(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewListHandler(st)

	w := httptest.NewRecorder()
	handler.GetAll(w, testutil.MakeRequest("GET", "/api/games", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var lists models.GameList
	testutil.AssertJSON(t, w, &lists)
	if len(lists) != 4 {
		t.Errorf("Expected 4 lists, got %d", len(lists))
	}
}

func TestGetList(t *testing.T) {
	st := testutil.SetupTestStoreWith(t, models.GameList{"main": {"A", "B"}})
	handler := NewListHandler(st)

	tests := []struct {
		name           string
		listType       string
		expectedStatus int
		expectedItems  []string
	}{
		{"existing list", "main", http.StatusOK, []string{"A", "B"}},
		{"unknown list", "books", http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/api/games/"+tt.listType, nil, nil)
			req.SetPathValue("type", tt.listType)
			w := httptest.NewRecorder()

			handler.GetList(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK {
				var items []string
				testutil.AssertJSON(t, w, &items)
				if !slices.Equal(items, tt.expectedItems) {
					t.Errorf("Expected %v, got %v", tt.expectedItems, items)
				}
			} else {
				testutil.AssertError(t, w, "Game list not found")
			}
		})
	}
}

func TestAddItem(t *testing.T) {
	tests := []struct {
		name           string
		listType       string
		body           any
		expectedStatus int
		expectedLen    int
	}{
		{"valid item", "main", models.AddItemRequest{Name: "C"}, http.StatusCreated, 3},
		{"duplicate item", "main", models.AddItemRequest{Name: "A"}, http.StatusConflict, 2},
		{"blank name", "main", models.AddItemRequest{Name: "  "}, http.StatusBadRequest, 2},
		{"unknown list", "books", models.AddItemRequest{Name: "C"}, http.StatusBadRequest, 2},
		{"missing body", "main", nil, http.StatusBadRequest, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := testutil.SetupTestStoreWith(t, models.GameList{"main": {"A", "B"}})
			handler := NewListHandler(st)

			req := testutil.MakeRequest("POST", "/api/games/"+tt.listType, tt.body, nil)
			req.SetPathValue("type", tt.listType)
			w := httptest.NewRecorder()

			handler.AddItem(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			// List length only changes on success
			items, err := st.Lists.GetList(req.Context(), "main")
			if err != nil {
				t.Fatalf("GetList failed: %v", err)
			}
			if len(items) != tt.expectedLen {
				t.Errorf("Expected %d items, got %d", tt.expectedLen, len(items))
			}
		})
	}
}

func TestAddThenGetRoundTrip(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewListHandler(st)

	req := testutil.MakeRequest("POST", "/api/games/tabletop", models.AddItemRequest{Name: "Cascadia"}, nil)
	req.SetPathValue("type", "tabletop")
	w := httptest.NewRecorder()
	handler.AddItem(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	req = testutil.MakeRequest("GET", "/api/games/tabletop", nil, nil)
	req.SetPathValue("type", "tabletop")
	w = httptest.NewRecorder()
	handler.GetList(w, req)

	var items []string
	testutil.AssertJSON(t, w, &items)
	count := 0
	for _, item := range items {
		if item == "Cascadia" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected Cascadia exactly once, found %d", count)
	}
}

func TestRemoveItem(t *testing.T) {
	st := testutil.SetupTestStoreWith(t, models.GameList{"main": {"A", "B", "C"}})
	handler := NewListHandler(st)

	tests := []struct {
		name           string
		listType       string
		item           string
		expectedStatus int
		expectedItems  []string
	}{
		{"existing item", "main", "B", http.StatusOK, []string{"A", "C"}},
		{"absent item", "main", "Z", http.StatusOK, []string{"A", "C"}},
		{"unknown list", "books", "A", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("DELETE", "/api/games/"+tt.listType+"/"+tt.item, nil, nil)
			req.SetPathValue("type", tt.listType)
			req.SetPathValue("name", tt.item)
			w := httptest.NewRecorder()

			handler.RemoveItem(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusOK {
				var items []string
				testutil.AssertJSON(t, w, &items)
				if !slices.Equal(items, tt.expectedItems) {
					t.Errorf("Expected %v, got %v", tt.expectedItems, items)
				}
			}
		})
	}
}
