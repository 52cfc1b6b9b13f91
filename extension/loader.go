// Package extension selects and runs the extension configured for this
// deployment. Extensions register themselves by name from init(); Load picks
// exactly one of them by identifier and runs its entry point against the
// shared context.
//
// A missing or failing extension never stops the service: Load reports a
// *LoadError, logs it, and the server starts in a degraded state.
package extension

import (
	"errors"
	"fmt"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/lblod/mu-go-template/core/shared"
)

// Kind classifies a load failure.
type Kind int

const (
	// KindNotFound means no extension is registered under the module path.
	KindNotFound Kind = iota + 1
	// KindInitFailed means the entry point returned an error or panicked.
	KindInitFailed
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInitFailed:
		return "init_failed"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownExtension is the configuration error for an identifier with
	// no registered extension.
	ErrUnknownExtension = errors.New("extension not registered")
	// ErrExtensionPanic wraps a panic recovered from an entry point.
	ErrExtensionPanic = errors.New("extension panicked during registration")
)

// LoadError describes why the configured extension could not be loaded.
type LoadError struct {
	ID     string
	Module string
	Kind   Kind
	Err    error
	// Recovered and Stack are set when the entry point panicked.
	Recovered any
	Stack     []byte
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s (%s): %v", e.Module, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a LoadError of KindNotFound.
func IsNotFound(err error) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Kind == KindNotFound
}

// IsInitFailed reports whether err is a LoadError of KindInitFailed.
func IsInitFailed(err error) bool {
	var le *LoadError
	return errors.As(err, &le) && le.Kind == KindInitFailed
}

// Load runs the extension registered under ModulePath(id). It never panics.
// Failures are logged through the context's logger (the global zap logger
// when ctx is nil) and returned as *LoadError; whatever the extension
// registered before failing stays in place. The registry is locked afterwards.
func Load(ctx *shared.Context, id string) error {
	path := ModulePath(id)
	lockRegistry()

	var err error
	if ctx == nil {
		err = &LoadError{ID: id, Module: path, Kind: KindInitFailed, Err: shared.ErrIncomplete}
	} else if fn, ok := Lookup(path); !ok {
		err = &LoadError{ID: id, Module: path, Kind: KindNotFound, Err: ErrUnknownExtension}
	} else {
		err = run(ctx, id, path, fn)
	}

	observe(path, err)
	logger := zap.S()
	if ctx != nil {
		logger = ctx.Logger()
	}
	report(logger, path, err)
	return err
}

func run(ctx *shared.Context, id, path string, fn RegisterFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &LoadError{
				ID:        id,
				Module:    path,
				Kind:      KindInitFailed,
				Err:       fmt.Errorf("%w: %v", ErrExtensionPanic, r),
				Recovered: r,
				Stack:     debug.Stack(),
			}
		}
	}()

	if ferr := fn(ctx); ferr != nil {
		return &LoadError{ID: id, Module: path, Kind: KindInitFailed, Err: ferr}
	}
	return nil
}

func report(logger *zap.SugaredLogger, path string, err error) {
	if err == nil {
		logger.Infow("Extension loaded", "module", path)
		return
	}

	var le *LoadError
	if !errors.As(err, &le) {
		logger.Errorw("Exception raised when loading app code", "module", path, "error", err)
		return
	}
	fields := []interface{}{"module", le.Module, "kind", le.Kind.String(), "error", le.Err}
	if le.Stack != nil {
		fields = append(fields, "panic_stack", string(le.Stack))
	}
	logger.Errorw("Exception raised when loading app code", fields...)
}
