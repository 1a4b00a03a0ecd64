// Package eval implements the calculator's expression evaluator and line
// dispatcher.
package eval

import (
	"fmt"
	"strconv"

	"nickandperla.net/memcalc/internal/memory"
	"nickandperla.net/memcalc/internal/scanner"
	"nickandperla.net/memcalc/internal/token"
)

// Recorder receives each successfully processed line, e.g. for session
// history.
type Recorder interface {
	Append(line, display string) error
}

// Evaluator dispatches calculator lines. The slot store and the previous
// expression result are threaded through it as explicit state, so there are
// no package globals and the evaluator is testable in isolation.
type Evaluator struct {
	memory         *memory.Store
	prev           float64
	mutationResult bool // mutation commands replace the previous result
	recorder       Recorder
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithMemory sets the slot store.
func WithMemory(m *memory.Store) Option {
	return func(e *Evaluator) { e.memory = m }
}

// WithMutationResult makes memory mutation commands update the previous
// result to the new slot value. The default leaves it unchanged.
func WithMutationResult() Option {
	return func(e *Evaluator) { e.mutationResult = true }
}

// WithRecorder sets the history recorder.
func WithRecorder(r Recorder) Option {
	return func(e *Evaluator) { e.recorder = r }
}

// New creates a new Evaluator with the given options.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	if e.memory == nil {
		e.memory = memory.NewStore()
	}
	return e
}

// Memory returns the evaluator's slot store.
func (e *Evaluator) Memory() *memory.Store {
	return e.memory
}

// PrevResult returns the previous expression result.
func (e *Evaluator) PrevResult() float64 {
	return e.prev
}

// ProcessLine tokenizes and dispatches one input line, returning its display
// string. A line whose first token is a memory mutation accumulates the
// previous result into the named slot; any other line is evaluated as one
// expression and becomes the new previous result. Failures leave the slot
// store and the previous result untouched.
func (e *Evaluator) ProcessLine(line string) (string, error) {
	items, err := scanner.Scan(line)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", &UnexpectedEOFError{Col: 1}
	}

	var display string
	switch first := items[0]; first.Kind {
	case token.MEMORY_PLUS:
		display, err = e.mutate(first.Name, e.prev)
	case token.MEMORY_MINUS:
		display, err = e.mutate(first.Name, -e.prev)
	default:
		var result float64
		result, err = Evaluate(items, e.memory)
		if err == nil {
			e.prev = result
			display = line + " equal " + formatResult(result)
		}
	}
	if err != nil {
		return "", err
	}

	if e.recorder != nil {
		if err := e.recorder.Append(line, display); err != nil {
			return display, fmt.Errorf("record history: %w", err)
		}
	}
	return display, nil
}

// mutate applies a memory mutation command. Tokens after the mutation token
// are ignored, matching the original single-token grammar for these lines.
func (e *Evaluator) mutate(name string, delta float64) (string, error) {
	value, err := e.memory.Accumulate(name, delta)
	if err != nil {
		return "", err
	}
	if e.mutationResult {
		e.prev = value
	}
	return "set memory" + name + " equal " + formatResult(value), nil
}

// formatResult renders a value the shortest way that round-trips, so whole
// numbers display without a decimal point. ±Inf and NaN display verbatim.
func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
