package internal

import (
	"log/slog"
	"sync/atomic"
)

// SetDebug turns step tracing on or off.
func (a *Actor) SetDebug(on bool) {
	var v uint32
	if on {
		v = 1
	}
	atomic.StoreUint32(&a.Debug, v)
}

// DebugStep does nothing if debugging is disabled for the actor; otherwise, it
// logs the frame about to be dispatched.
func (a *Actor) DebugStep(f Frame, frames, values int) {
	if atomic.LoadUint32(&a.Debug) != 0 {
		a.debugStepSlow(f, frames, values)
	}
}

// debugStepSlow is an outlined path of DebugStep.
func (a *Actor) debugStepSlow(f Frame, frames, values int) {
	a.Logger.Debug("step",
		slog.String("expr", f.Expr.String()),
		slog.Int("step", f.Step),
		slog.Int("floor", f.Floor),
		slog.Int("frames", frames),
		slog.Int("values", values),
		slog.Uint64("target", uint64(f.Target.UniqueID())),
	)
}
