// Package observability provides hooks for logging and metrics.
//
// The image pipeline reports its stages (load, transform, save) through a
// registered [PipelineHooks] value. The default is a no-op, so library users
// pay nothing unless they opt in.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnLoadStart(ctx, path)
//	// ... decode ...
//	observability.Pipeline().OnLoadComplete(ctx, path, width, height, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the image pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, width, height int, duration time.Duration, err error)

	// Transform events; op is "randomize" or "interleave"
	OnTransformStart(ctx context.Context, op string)
	OnTransformComplete(ctx context.Context, op string, width, height int, duration time.Duration, err error)

	// Save events
	OnSaveStart(ctx context.Context, path string)
	OnSaveComplete(ctx context.Context, path string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string) {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnTransformStart(context.Context, string) {}
func (NoopPipelineHooks) OnTransformComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnSaveStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnSaveComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
// A nil value is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Reset restores the no-op default.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
}
