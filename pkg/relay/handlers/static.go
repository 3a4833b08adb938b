package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// StaticHandler serves the UI assets and falls back to the entry document
// for any unmatched path, which lets the UI do its own client-side routing.
type StaticHandler struct {
	dir   string
	index string
}

// NewStaticHandler creates a static handler serving files from dir with the
// given entry document.
func NewStaticHandler(dir, index string) *StaticHandler {
	return &StaticHandler{dir: dir, index: index}
}

// ServeHTTP implements http.Handler.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// path.Clean on a rooted path cannot escape the asset directory.
	rel := path.Clean("/" + r.URL.Path)
	name := filepath.Join(h.dir, filepath.FromSlash(rel))

	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		http.ServeFile(w, r, name)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.dir, h.index))
}
