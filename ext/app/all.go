// Package app links the bundled extensions into the binary. Each one
// registers itself as ext.app.<name>; APP_ENTRYPOINT picks which one runs.
package app

import (
	_ "github.com/lblod/mu-go-template/ext/app/hello"
)
