// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/game-wheel/cliparse"
	"github.com/danielhkuo/game-wheel/models"
	"github.com/danielhkuo/game-wheel/store"
)

// SetupTestStore creates a file-backed store in a temp dir, bootstrapped
// with the default lists. It is closed when the test ends.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return SetupTestStoreWith(t, models.DefaultGameList())
}

// SetupTestStoreWith is SetupTestStore with custom initial lists.
func SetupTestStoreWith(t *testing.T, lists models.GameList) *store.Store {
	t.Helper()

	backend, err := store.NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create test backend: %v", err)
	}
	st := store.New(backend)
	if err := st.Bootstrap(context.Background(), lists); err != nil {
		t.Fatalf("Failed to bootstrap test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      3318,
		StoreType: "file",
		DataDir:   "testdata",
		StaticDir: "",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError decodes an error body and checks its message
func AssertError(t *testing.T, w *httptest.ResponseRecorder, expected string) {
	t.Helper()
	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.Error != expected {
		t.Errorf("Expected error '%s', got '%s'", expected, resp.Error)
	}
}
