package registry

// Core keys for GlobalRegistry.
const (
	// Extension registries, stored in GlobalRegistry
	KeyRegistryExtensions = "registry:extensions"
	KeyRegistryCmd        = "registry:cmd"
)
