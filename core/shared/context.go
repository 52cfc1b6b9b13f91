// Package shared holds the collaborators every extension receives when it is
// loaded: the application instance, the helper utilities and the SPARQL
// escaping function.
package shared

import (
	"errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lblod/mu-go-template/escape"
	"github.com/lblod/mu-go-template/helpers"
)

// ErrIncomplete is returned when a Context is built with a missing member.
var ErrIncomplete = errors.New("shared context: app, helpers and escape are required")

// Context is built once at startup and is read-only afterwards. It has no
// setters, so extensions cannot replace or remove its members.
type Context struct {
	app     *echo.Echo
	helpers *helpers.Helpers
	escape  escape.Func
}

// New assembles the shared context.
func New(app *echo.Echo, h *helpers.Helpers, esc escape.Func) (*Context, error) {
	if app == nil || h == nil || esc == nil {
		return nil, ErrIncomplete
	}
	return &Context{app: app, helpers: h, escape: esc}, nil
}

// App returns the application instance extensions register routes on.
func (c *Context) App() *echo.Echo { return c.app }

// Helpers returns the helper utilities.
func (c *Context) Helpers() *helpers.Helpers { return c.helpers }

// Escape returns the SPARQL escaping function.
func (c *Context) Escape() escape.Func { return c.escape }

// Logger is shorthand for Helpers().Logger.
func (c *Context) Logger() *zap.SugaredLogger { return c.helpers.Logger }
