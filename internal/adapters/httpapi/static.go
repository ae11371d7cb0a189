package httpapi

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// staticHandler serves the web UI from StaticDir. Unknown paths get
// index.html so client-side routes survive a reload. Without a StaticDir
// the root only reports what is running.
func (c *controller) staticHandler() http.Handler {
	dir := c.opts.StaticDir
	if dir == "" {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				jsonError(w, http.StatusNotFound, "not found")
				return
			}
			jsonEncode(w, map[string]string{
				"name":    "hotline",
				"version": c.opts.Version,
			})
		})
	}

	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clean := path.Clean("/" + r.URL.Path)
		full := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(clean, "/")))

		info, err := os.Stat(full)
		if err == nil && !info.IsDir() {
			files.ServeHTTP(w, r)
			return
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			logError(r, "static file lookup failed", "error", err)
		}

		http.ServeFile(w, r, filepath.Join(dir, "index.html"))
	})
}
