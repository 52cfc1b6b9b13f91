package extension

import "github.com/lblod/mu-go-template/core/registry"

// unlockForTesting reopens the registry after a Load in an earlier test.
func unlockForTesting() {
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryExtensions)
}

// unregister removes an extension and leaves the registry unlocked.
func unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	unlockForTesting()
	next := make(map[string]RegisterFunc)
	for k, v := range getEntries() {
		if k != ModulePath(name) {
			next[k] = v
		}
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryExtensions, next)
}
