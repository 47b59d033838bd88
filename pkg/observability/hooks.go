// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about link checks, proximity matching and file loading.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which keeps the engine
// free of observability frameworks and avoids import cycles.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLinkHooks(&myLinkHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Link().OnMatchStart(dragged, len(neighbors))
//	// ... scan candidates ...
//	observability.Link().OnMatchComplete(dragged, neighbor, distance, found, duration)
package observability

import (
	"sync"
	"time"

	"github.com/openblocks/blocklink/pkg/block"
)

// =============================================================================
// Link Hooks
// =============================================================================

// LinkHooks receives events from the link checker.
type LinkHooks interface {
	// OnCheck records one rule evaluation for a candidate pair.
	OnCheck(a, b block.ID, admissible bool)

	// OnMatchStart records the start of a proximity search.
	OnMatchStart(dragged block.ID, candidates int)

	// OnMatchComplete records the end of a proximity search. neighbor and
	// distance are zero when found is false.
	OnMatchComplete(dragged, neighbor block.ID, distance float64, found bool, duration time.Duration)
}

// =============================================================================
// Load Hooks
// =============================================================================

// LoadHooks receives events from scene and configuration loading.
type LoadHooks interface {
	// OnLoad records a completed load. kind is "scene" or "config"; items is
	// the number of blocks or rules read.
	OnLoad(kind, path string, items int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLinkHooks is a no-op implementation of LinkHooks.
type NoopLinkHooks struct{}

func (NoopLinkHooks) OnCheck(block.ID, block.ID, bool) {}
func (NoopLinkHooks) OnMatchStart(block.ID, int)       {}
func (NoopLinkHooks) OnMatchComplete(block.ID, block.ID, float64, bool, time.Duration) {
}

// NoopLoadHooks is a no-op implementation of LoadHooks.
type NoopLoadHooks struct{}

func (NoopLoadHooks) OnLoad(string, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	linkHooks LinkHooks = NoopLinkHooks{}
	loadHooks LoadHooks = NoopLoadHooks{}
	hooksMu   sync.RWMutex
)

// SetLinkHooks registers custom link hooks.
// This should be called once at application startup before any matching.
func SetLinkHooks(h LinkHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		linkHooks = h
	}
}

// SetLoadHooks registers custom load hooks.
func SetLoadHooks(h LoadHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		loadHooks = h
	}
}

// Link returns the registered link hooks.
func Link() LinkHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return linkHooks
}

// Load returns the registered load hooks.
func Load() LoadHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return loadHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	linkHooks = NoopLinkHooks{}
	loadHooks = NoopLoadHooks{}
}
