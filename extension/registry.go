package extension

import (
	"regexp"
	"sort"
	"sync"

	"github.com/lblod/mu-go-template/core/registry"
	"github.com/lblod/mu-go-template/core/shared"
)

// ModulePrefix is prepended to an extension name to form its module path.
const ModulePrefix = "ext.app."

// RegisterFunc is an extension's entry point. It wires the extension's
// behavior onto the shared application instance.
type RegisterFunc func(ctx *shared.Context) error

var (
	mu          sync.Mutex
	namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
)

// ModulePath maps an extension identifier to its module path.
func ModulePath(id string) string {
	return ModulePrefix + id
}

func getEntries() map[string]RegisterFunc {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryExtensions); ok && v != nil {
		return v.(map[string]RegisterFunc)
	}
	return nil
}

// Register adds an extension under ModulePath(name). Call from init() in
// packages under ext/app. Panics on an invalid or duplicate name, a nil
// entry point, or once an extension has been loaded.
func Register(name string, fn RegisterFunc) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryExtensions) {
		panic("extension/registry: locked (register only during init before Load)")
	}
	if !namePattern.MatchString(name) {
		panic("extension/registry: invalid name " + name)
	}
	if fn == nil {
		panic("extension/registry: nil entry point for " + name)
	}
	path := ModulePath(name)
	entries := getEntries()
	if _, ok := entries[path]; ok {
		panic("extension/registry: duplicate " + path)
	}

	// copy on write; Lookup reads without the mutex
	next := make(map[string]RegisterFunc, len(entries)+1)
	for k, v := range entries {
		next[k] = v
	}
	next[path] = fn
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryExtensions, next)
}

// Lookup returns the entry point registered under module path.
func Lookup(path string) (RegisterFunc, bool) {
	fn, ok := getEntries()[path]
	return fn, ok
}

// Names returns the module paths of all registered extensions, sorted.
func Names() []string {
	entries := getEntries()
	names := make([]string, 0, len(entries))
	for n := range entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func lockRegistry() {
	registry.GlobalRegistry.Lock(registry.KeyRegistryExtensions)
}
