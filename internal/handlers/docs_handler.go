package handlers

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"finance-tracker/internal/errors"

	"github.com/labstack/echo/v4"
)

// DocsHandler serves the OpenAPI document produced by swag
type DocsHandler struct {
	document []byte
	etag     string
}

// NewDocsHandler loads <dir>/swagger.json once. A missing document leaves the
// endpoint answering 404 until the docs are generated and the API restarted.
func NewDocsHandler(dir string) *DocsHandler {
	document, err := os.ReadFile(filepath.Join(dir, "swagger.json"))
	if err != nil {
		document = nil
	}

	return &DocsHandler{document: document, etag: generateETag(document)}
}

// ServeOpenAPI serves the generated OpenAPI document
// @Summary OpenAPI document
// @Tags Documentation
// @Produce json
// @Success 200 {object} object
// @Success 304 "Not modified"
// @Failure 404 {object} errors.ErrorResponse "SYSTEM_007 - Documentation not generated"
// @Router /docs/openapi.json [get]
func (h *DocsHandler) ServeOpenAPI(c echo.Context) error {
	if len(h.document) == 0 {
		return SendError(c, errors.SystemRouteNotFound, errors.WithDetails("API documentation has not been generated"))
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	c.Response().Header().Set("ETag", h.etag)
	if match := c.Request().Header.Get("If-None-Match"); match == h.etag {
		return c.NoContent(http.StatusNotModified)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, h.document)
}

func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("\"%x\"", hash[:16])
}
