// Package hello is the example extension, selected with APP_ENTRYPOINT=hello.
package hello

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/lblod/mu-go-template/cmd"
	"github.com/lblod/mu-go-template/core/shared"
	"github.com/lblod/mu-go-template/escape"
	"github.com/lblod/mu-go-template/extension"
	"github.com/lblod/mu-go-template/vocabulary"
)

// Name is the APP_ENTRYPOINT value for this extension.
const Name = "hello"

func init() {
	extension.Register(Name, Register)

	cmd.Register(&cobra.Command{
		Use:   "hello:triple [uuid]",
		Short: "Print the triple GET /hello would describe for a uuid",
		Args:  cobra.ExactArgs(1),
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprintln(c.OutOrStdout(), triple(escape.Sparql, args[0]))
		},
	})
}

func triple(esc escape.Func, id string) string {
	iri := vocabulary.MUExt.Term("greetings/" + id)
	return esc(escape.URI(iri)) + " " + esc(escape.URI(vocabulary.UUID)) + " " + esc(id) + " ."
}

// Greeting is the response of GET /hello.
type Greeting struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	IRI     string `json:"iri"`
	Triple  string `json:"triple"`
}

// Register mounts GET /hello on the application instance.
func Register(ctx *shared.Context) error {
	h := ctx.Helpers()
	esc := ctx.Escape()

	ctx.App().GET("/hello", func(c echo.Context) error {
		id := h.GenerateUUID()
		iri := vocabulary.MUExt.Term("greetings/" + id)
		h.Logger.Debugw("Greeting", "session", h.SessionID(c), "iri", iri)

		return c.JSON(http.StatusOK, Greeting{
			Message: "Hello from mu-go-template!",
			ID:      id,
			IRI:     iri,
			Triple:  triple(esc, id),
		})
	})
	return nil
}
