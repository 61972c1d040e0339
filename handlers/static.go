// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielhkuo/game-wheel/middleware"
)

const rootBanner = "game-wheel API v1"

// StaticHandler serves the front-end from dir and falls back to index.html
// for unknown paths so client-side routes resolve.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

// ServeHTTP handles GET /
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}

	if h.dir != "" {
		// Clean against "/" so ".." can't escape dir.
		name := filepath.Join(h.dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			http.ServeFile(w, r, name)
			return
		}

		index := filepath.Join(h.dir, "index.html")
		if _, err := os.Stat(index); err == nil {
			http.ServeFile(w, r, index)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(rootBanner))
}
