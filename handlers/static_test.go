// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/game-wheel/testutil"
)

func TestStaticHandler(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>wheel</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "wheel.js"), []byte("spin()"), 0o644); err != nil {
		t.Fatal(err)
	}
	handler := NewStaticHandler(dir)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{"root serves index", "/", http.StatusOK, "<html>wheel</html>"},
		{"asset served", "/wheel.js", http.StatusOK, "spin()"},
		{"client route falls back", "/admin", http.StatusOK, "<html>wheel</html>"},
		{"traversal rejected", "/../../etc/passwd", http.StatusBadRequest, ""},
		{"unknown api path", "/api/nope", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/", nil, nil)
			req.URL.Path = tt.path
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedBody != "" && !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("Expected body %q, got %q", tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestStaticHandlerWithoutFrontend(t *testing.T) {
	handler := NewStaticHandler(filepath.Join(t.TempDir(), "missing"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, testutil.MakeRequest("GET", "/", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "game-wheel API v1" {
		t.Errorf("Expected banner, got %q", w.Body.String())
	}
}

func TestStaticHandlerUnknownAPIPath(t *testing.T) {
	handler := NewStaticHandler(t.TempDir())

	for _, path := range []string{"/api/nope", "/api/games/main/extra/segment"} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, testutil.MakeRequest("GET", path, nil, nil))

		testutil.AssertStatus(t, w, http.StatusNotFound)
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("%s: expected JSON content type, got %q", path, ct)
		}
		testutil.AssertError(t, w, "Not found")
	}
}
