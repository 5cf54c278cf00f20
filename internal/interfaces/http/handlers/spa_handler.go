package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	domainerrors "solene-digital.backend/internal/domain/errors"
	"solene-digital.backend/internal/interfaces/http/response"
)

// SPAHandler serves the built client. Unknown paths get index.html so the
// client-side router can resolve them; /api paths never do.
type SPAHandler struct {
	dir   string
	index string
}

func NewSPAHandler(dir string) (*SPAHandler, error) {
	index := filepath.Join(dir, "index.html")
	info, err := os.Stat(index)
	if err != nil {
		return nil, fmt.Errorf("could not find the build directory %s: %w", dir, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", index)
	}
	return &SPAHandler{dir: dir, index: index}, nil
}

// Serve is meant to be installed as the router's NoRoute handler.
func (h *SPAHandler) Serve(c *gin.Context) {
	NotFoundAPI(c)
	if c.IsAborted() {
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		response.Error(c, domainerrors.NotFound("not found"))
		return
	}

	clean := path.Clean("/" + c.Request.URL.Path)
	file := filepath.Join(h.dir, filepath.FromSlash(clean))
	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		c.File(file)
		return
	}
	c.File(h.index)
}

// NotFoundAPI answers unknown /api paths with a JSON 404 and aborts. Other
// paths are left alone.
func NotFoundAPI(c *gin.Context) {
	p := c.Request.URL.Path
	if p == "/api" || strings.HasPrefix(p, "/api/") {
		response.Error(c, domainerrors.NotFound("not found"))
		c.Abort()
	}
}
