// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/game-wheel/models"
	"github.com/danielhkuo/game-wheel/testutil"
)

// TestConcurrentSuggestions verifies that simultaneous submissions are all
// recorded; the store serializes read-modify-write so none is lost.
func TestConcurrentSuggestions(t *testing.T) {
	st := testutil.SetupTestStore(t)
	handler := NewSuggestionHandler(st)

	const numSubmitters = 10
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := range numSubmitters {
		wg.Add(1)
		go func() {
			defer wg.Done()

			body := models.SuggestionRequest{Type: "tabletop", Name: fmt.Sprintf("Concurrent %d", i)}
			w := httptest.NewRecorder()
			handler.Submit(w, testutil.MakeRequest("POST", "/api/suggestions", body, nil))

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			} else {
				t.Errorf("Submitter %d got %d: %s", i, w.Code, w.Body.String())
			}
		}()
	}
	wg.Wait()

	if got := successCount.Load(); got != numSubmitters {
		t.Errorf("Expected %d successes, got %d", numSubmitters, got)
	}

	pending, err := st.Suggestions.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending failed: %v", err)
	}
	if len(pending) != numSubmitters {
		t.Errorf("Expected %d pending suggestions, got %d", numSubmitters, len(pending))
	}
}

// TestConcurrentDuplicateApprovals approves the same suggestion from many
// goroutines. Exactly one wins; the item lands in the list once.
func TestConcurrentDuplicateApprovals(t *testing.T) {
	ctx := context.Background()
	st := testutil.SetupTestStore(t)
	handler := NewSuggestionHandler(st)

	s, err := st.Suggestions.Submit(ctx, "main", "Race Game")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	var okCount, notFoundCount atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/api/suggestions/"+s.ID+"/approve", nil, nil)
			req.SetPathValue("id", s.ID)
			w := httptest.NewRecorder()
			handler.Approve(w, req)

			switch w.Code {
			case http.StatusOK:
				okCount.Add(1)
			case http.StatusNotFound:
				notFoundCount.Add(1)
			}
		}()
	}
	wg.Wait()

	if okCount.Load() != 1 || notFoundCount.Load() != 7 {
		t.Errorf("Expected 1 approval and 7 not found, got %d and %d", okCount.Load(), notFoundCount.Load())
	}

	items, _ := st.Lists.GetList(ctx, "main")
	count := 0
	for _, item := range items {
		if item == "Race Game" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected Race Game once, found %d", count)
	}
}
