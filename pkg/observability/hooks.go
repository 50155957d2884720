// Package observability lets callers observe a pipeline run without tying the
// analysis packages to a metrics or tracing backend.
//
// Hooks are registered once by main and read by the pipeline:
//
//	func main() {
//	    observability.SetPipelineHooks(&stageTimer{})
//	    // ... run contribnet
//	}
//
// The runner reports every stage:
//
//	observability.Pipeline().OnStageStart(ctx, runID, "closeness")
//	// ... compute ...
//	observability.Pipeline().OnStageComplete(ctx, runID, "closeness", elapsed, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives stage events from a pipeline run.
type PipelineHooks interface {
	OnStageStart(ctx context.Context, runID, stage string)
	OnStageComplete(ctx context.Context, runID, stage string, duration time.Duration, err error)
}

// OutputHooks receives events when result files are written.
type OutputHooks interface {
	// OnOutputWritten records a file that was atomically replaced.
	OnOutputWritten(ctx context.Context, runID, kind, path string)
}

// NoopPipelineHooks ignores every event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnStageStart(context.Context, string, string) {}
func (NoopPipelineHooks) OnStageComplete(context.Context, string, string, time.Duration, error) {
}

// NoopOutputHooks ignores every event.
type NoopOutputHooks struct{}

func (NoopOutputHooks) OnOutputWritten(context.Context, string, string, string) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	outputHooks   OutputHooks   = NoopOutputHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers stage hooks. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetOutputHooks registers output hooks. A nil h is ignored.
func SetOutputHooks(h OutputHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		outputHooks = h
	}
}

// Pipeline returns the registered stage hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Output returns the registered output hooks.
func Output() OutputHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return outputHooks
}

// Reset restores the no-op hooks. Tests use it to undo registrations.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	outputHooks = NoopOutputHooks{}
}
