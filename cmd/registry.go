package cmd

import (
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/lblod/mu-go-template/core/registry"
)

// Extensions contribute subcommands from init(), next to their HTTP entry
// point. Execute attaches them once, before the first command runs.

var cmdMu sync.Mutex

func queued() map[string]*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.(map[string]*cobra.Command)
	}
	return nil
}

func builtin(name string) bool {
	for _, c := range rootCmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// Register queues c for the root command. Panics on a nil command, a name
// that is already queued or built in, or after Apply.
func Register(c *cobra.Command) {
	cmdMu.Lock()
	defer cmdMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked (register only during init before Execute)")
	}
	if c == nil {
		panic("cmd/registry: nil command")
	}
	name := c.Name()
	cur := queued()
	if _, dup := cur[name]; dup || builtin(name) {
		panic("cmd/registry: duplicate command " + name)
	}

	next := make(map[string]*cobra.Command, len(cur)+1)
	for k, v := range cur {
		next[k] = v
	}
	next[name] = c
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, next)
}

// Apply attaches queued commands to the root command in name order and
// locks the registry. Later calls do nothing.
func Apply() {
	cmdMu.Lock()
	defer cmdMu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		return
	}
	cur := queued()
	names := make([]string, 0, len(cur))
	for n := range cur {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		rootCmd.AddCommand(cur[n])
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}
