package scenario

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

var (
	ErrUnknownOp        = errors.New("unknown operation")
	ErrUnknownErrorKind = errors.New("unknown error kind")
	ErrMismatch         = errors.New("unexpected outcome")
)

// Error kinds a step may expect.
const (
	ErrorNone     = ""
	ErrorEmpty    = "empty"
	ErrorNotFound = "not_found"
)

// DefaultQueue is the queue a step targets when it names none.
const DefaultQueue = "main"

// Scenario is a named list of steps replayed against a set of named queues.
type Scenario struct {
	Name  string `toml:"name"`
	Steps []Step `toml:"step"`
}

// Step is one queue operation. Queue names the receiver and Other the second
// queue of merge, copy, move, swap and compare. Expect, when set, is checked
// against the step result; booleans are reported as 0 or 1. Error names the
// error kind the step must fail with.
type Step struct {
	Op     string `toml:"op"`
	Queue  string `toml:"queue"`
	Other  string `toml:"other"`
	Key    int    `toml:"key"`
	Value  int    `toml:"value"`
	Expect *int   `toml:"expect"`
	Error  string `toml:"error"`
}

// StepError reports the step that failed a run.
type StepError struct {
	Index int
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Load decodes a scenario from a TOML file.
func Load(path string) (Scenario, error) {
	var s Scenario
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Scenario{}, fmt.Errorf("failed to decode scenario %s: %w", path, err)
	}
	return s, s.validate()
}

// Decode reads a scenario in TOML form.
func Decode(r io.Reader) (Scenario, error) {
	var s Scenario
	if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
		return Scenario{}, fmt.Errorf("failed to decode scenario: %w", err)
	}
	return s, s.validate()
}

func (s Scenario) validate() error {
	for i, st := range s.Steps {
		if _, ok := ops[st.Op]; !ok {
			return &StepError{Index: i, Op: st.Op, Err: ErrUnknownOp}
		}
		switch st.Error {
		case ErrorNone, ErrorEmpty, ErrorNotFound:
		default:
			return &StepError{Index: i, Op: st.Op, Err: fmt.Errorf("%w: %q", ErrUnknownErrorKind, st.Error)}
		}
	}
	return nil
}

func expect(v int) *int { return &v }

// Demo returns the built-in scenario run by pqdemo when no file is given.
func Demo() Scenario {
	return Scenario{
		Name: "demo",
		Steps: []Step{
			{Op: OpEmpty, Queue: "p", Expect: expect(1)},
			{Op: OpInsert, Queue: "p", Key: 1, Value: 42},
			{Op: OpInsert, Queue: "p", Key: 2, Value: 13},
			{Op: OpSize, Queue: "p", Expect: expect(2)},
			{Op: OpMaxKey, Queue: "p", Expect: expect(1)},
			{Op: OpMaxValue, Queue: "p", Expect: expect(42)},
			{Op: OpMinKey, Queue: "p", Expect: expect(2)},
			{Op: OpMinValue, Queue: "p", Expect: expect(13)},
			{Op: OpCopy, Queue: "q", Other: "p"},
			{Op: OpDeleteMax, Queue: "q"},
			{Op: OpDeleteMin, Queue: "q"},
			{Op: OpDeleteMin, Queue: "q"},
			{Op: OpEmpty, Queue: "q", Expect: expect(1)},
			{Op: OpCopy, Queue: "r", Other: "q"},
			{Op: OpInsert, Queue: "r", Key: 1, Value: 100},
			{Op: OpInsert, Queue: "r", Key: 2, Value: 100},
			{Op: OpInsert, Queue: "r", Key: 3, Value: 300},
			{Op: OpCopy, Queue: "s", Other: "r"},
			{Op: OpChangeValue, Queue: "s", Key: 4, Value: 400, Error: ErrorNotFound},
			{Op: OpChangeValue, Queue: "s", Key: 2, Value: 200},
			{Op: OpMinValue, Queue: "s", Expect: expect(100)},
			{Op: OpCompare, Queue: "r", Other: "s", Expect: expect(-1)},
			{Op: OpMerge, Queue: "r", Other: "s"},
			{Op: OpSize, Queue: "r", Expect: expect(6)},
			{Op: OpEmpty, Queue: "s", Expect: expect(1)},
			{Op: OpClear, Queue: "r"},
			{Op: OpMinValue, Queue: "r", Error: ErrorEmpty},
		},
	}
}
