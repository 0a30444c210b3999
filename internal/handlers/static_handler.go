package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const msgRouteNotFound = "Маршрут не найден"

// StaticHandler serves the landing page assets for routes no API handler
// claimed, falling back to the JSON not-found envelope. Route resolution
// order matters: API routes first, then files, then 404.
type StaticHandler struct {
	root string
}

func NewStaticHandler(root string) *StaticHandler {
	return &StaticHandler{root: root}
}

// NoRoute is installed as the Gin catch-all
func (h *StaticHandler) NoRoute(c *gin.Context) {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		if path, ok := h.resolve(c.Request.URL.Path); ok {
			c.File(path)
			return
		}
	}

	respondFailure(c, http.StatusNotFound, msgRouteNotFound, nil)
}

// resolve maps a URL path to a file under the static root, refusing anything
// that escapes it. "/" maps to index.html.
func (h *StaticHandler) resolve(urlPath string) (string, bool) {
	if h.root == "" {
		return "", false
	}

	cleaned := filepath.Clean("/" + strings.TrimPrefix(urlPath, "/"))
	if cleaned == "/" {
		cleaned = "/index.html"
	}

	full := filepath.Join(h.root, filepath.FromSlash(cleaned))

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", false
	}
	return full, true
}
