// Package helpers bundles the request utilities every mu extension needs:
// logging, identifiers, mu header access and JSON:API error documents.
package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Headers set by the mu identifier and dispatcher.
const (
	HeaderSessionID  = "MU-SESSION-ID"
	HeaderCallID     = "MU-CALL-ID"
	HeaderRewriteURL = "X-REWRITE-URL"
)

// MIMEJSONAPI is the JSON:API media type.
const MIMEJSONAPI = "application/vnd.api+json"

// APIError is a JSON:API error that maps to an HTTP status.
type APIError struct {
	Title  string
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Title)
}

type errorObject struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

type errorDocument struct {
	Errors []errorObject `json:"errors"`
}

// Helpers is the utility collaborator shared with extensions.
type Helpers struct {
	Logger *zap.SugaredLogger
}

// New wraps logger. A nil logger is replaced by a no-op logger.
func New(logger *zap.SugaredLogger) *Helpers {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Helpers{Logger: logger}
}

// GenerateUUID returns a random (v4) UUID string.
func (h *Helpers) GenerateUUID() string {
	return uuid.NewString()
}

// SessionID returns the mu session IRI of the request, if any.
func (h *Helpers) SessionID(c echo.Context) string {
	return c.Request().Header.Get(HeaderSessionID)
}

// CallID returns the mu call id of the request, if any.
func (h *Helpers) CallID(c echo.Context) string {
	return c.Request().Header.Get(HeaderCallID)
}

// RewriteURL returns the original URL as seen by the dispatcher.
func (h *Helpers) RewriteURL(c echo.Context) string {
	return c.Request().Header.Get(HeaderRewriteURL)
}

// Error writes a JSON:API error document with the given title and status.
func (h *Helpers) Error(c echo.Context, title string, status int) error {
	doc := errorDocument{Errors: []errorObject{{Title: title, Status: strconv.Itoa(status)}}}
	c.Response().Header().Set(echo.HeaderContentType, MIMEJSONAPI)
	return c.JSON(status, doc)
}

// WriteError renders err as a JSON:API error. APIErrors keep their status,
// anything else becomes a 500.
func (h *Helpers) WriteError(c echo.Context, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return h.Error(c, apiErr.Title, apiErr.Status)
	}
	h.Logger.Errorw("Unhandled error in request", "path", c.Path(), "error", err)
	return h.Error(c, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// ValidateJSONAPIContentType checks that the request body is JSON:API.
func (h *Helpers) ValidateJSONAPIContentType(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.Contains(contentType, MIMEJSONAPI) {
		return &APIError{
			Title:  fmt.Sprintf("Content-Type must be %s instead of %s.", MIMEJSONAPI, contentType),
			Status: http.StatusBadRequest,
		}
	}
	return nil
}

// ValidateResourceType checks the "type" member of a JSON:API resource object.
func (h *Helpers) ValidateResourceType(expected string, data map[string]any) error {
	actual, _ := data["type"].(string)
	if actual != expected {
		return &APIError{
			Title:  fmt.Sprintf("Incorrect type. Type must be %s, instead of %s.", expected, actual),
			Status: http.StatusConflict,
		}
	}
	return nil
}
