package memcalc

import (
	"nickandperla.net/memcalc/internal/eval"
	"nickandperla.net/memcalc/internal/history"
	"nickandperla.net/memcalc/internal/memory"
)

// Slot is a named memory cell holding one floating-point value.
type Slot = memory.Slot

// Entry is one history entry.
type Entry = history.Entry

// HistoryStore is the interface for session history stores.
type HistoryStore = history.Store

// Runtime is the calculator runtime: a slot store, the previous expression
// result, and optionally a session history store.
type Runtime struct {
	evaluator      *eval.Evaluator
	memory         *memory.Store
	history        history.Store
	slotCap        int
	mutationResult bool
}

// New creates a new calculator runtime with the given options.
func New(opts ...Option) *Runtime {
	r := &Runtime{}
	for _, opt := range opts {
		opt(r)
	}

	if r.memory == nil {
		if r.slotCap > 0 {
			r.memory = memory.NewCappedStore(r.slotCap)
		} else {
			r.memory = memory.NewStore()
		}
	}

	evalOpts := []eval.Option{eval.WithMemory(r.memory)}
	if r.history != nil {
		evalOpts = append(evalOpts, eval.WithRecorder(r.history))
	}
	if r.mutationResult {
		evalOpts = append(evalOpts, eval.WithMutationResult())
	}
	r.evaluator = eval.New(evalOpts...)

	return r
}

// ProcessLine processes one calculator line and returns its display string:
// "<line> equal <result>" for expressions, "set memory<name> equal <value>"
// for memory mutation commands. A failed line leaves all state untouched.
func (r *Runtime) ProcessLine(line string) (string, error) {
	return r.evaluator.ProcessLine(line)
}

// PrevResult returns the result of the last successfully evaluated
// expression, initially 0.
func (r *Runtime) PrevResult() float64 {
	return r.evaluator.PrevResult()
}

// Slots returns a snapshot of the memory slots sorted by name.
func (r *Runtime) Slots() []Slot {
	return r.memory.Snapshot()
}

// History returns the session history store, or nil if history is disabled.
func (r *Runtime) History() HistoryStore {
	return r.history
}

// Close releases resources.
func (r *Runtime) Close() error {
	if r.history != nil {
		return r.history.Close()
	}
	return nil
}
