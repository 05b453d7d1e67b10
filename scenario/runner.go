package scenario

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/davidvella/pqueue/priority"
	"go.uber.org/zap"
)

// Operations understood by the runner.
const (
	OpInsert      = "insert"
	OpDeleteMin   = "delete_min"
	OpDeleteMax   = "delete_max"
	OpChangeValue = "change_value"
	OpMinValue    = "min_value"
	OpMaxValue    = "max_value"
	OpMinKey      = "min_key"
	OpMaxKey      = "max_key"
	OpGet         = "get"
	OpCount       = "count"
	OpSize        = "size"
	OpEmpty       = "empty"
	OpClear       = "clear"
	OpMerge       = "merge"
	OpCopy        = "copy"
	OpMove        = "move"
	OpSwap        = "swap"
	OpCompare     = "compare"
)

type queue = priority.Queue[int, int]

// result is the outcome of one step; ok is false for steps without a result.
type result struct {
	value int
	ok    bool
}

type opFunc func(r *Runner, q *queue, st Step) (result, error)

var ops = map[string]opFunc{
	OpInsert: func(_ *Runner, q *queue, st Step) (result, error) {
		q.Insert(st.Key, st.Value)
		return result{}, nil
	},
	OpDeleteMin: func(_ *Runner, q *queue, _ Step) (result, error) {
		q.DeleteMin()
		return result{}, nil
	},
	OpDeleteMax: func(_ *Runner, q *queue, _ Step) (result, error) {
		q.DeleteMax()
		return result{}, nil
	},
	OpChangeValue: func(_ *Runner, q *queue, st Step) (result, error) {
		return result{}, q.ChangeValue(st.Key, st.Value)
	},
	OpMinValue: func(_ *Runner, q *queue, _ Step) (result, error) {
		return valued(q.MinValue())
	},
	OpMaxValue: func(_ *Runner, q *queue, _ Step) (result, error) {
		return valued(q.MaxValue())
	},
	OpMinKey: func(_ *Runner, q *queue, _ Step) (result, error) {
		return valued(q.MinKey())
	},
	OpMaxKey: func(_ *Runner, q *queue, _ Step) (result, error) {
		return valued(q.MaxKey())
	},
	OpGet: func(_ *Runner, q *queue, st Step) (result, error) {
		return valued(q.Get(st.Key))
	},
	OpCount: func(_ *Runner, q *queue, st Step) (result, error) {
		return result{value: q.Count(st.Key), ok: true}, nil
	},
	OpSize: func(_ *Runner, q *queue, _ Step) (result, error) {
		return result{value: q.Len(), ok: true}, nil
	},
	OpEmpty: func(_ *Runner, q *queue, _ Step) (result, error) {
		return boolean(q.Empty()), nil
	},
	OpClear: func(_ *Runner, q *queue, _ Step) (result, error) {
		q.Clear()
		return result{}, nil
	},
	OpMerge: func(r *Runner, q *queue, st Step) (result, error) {
		q.Merge(r.queue(st.Other))
		return result{}, nil
	},
	OpCopy: func(r *Runner, q *queue, st Step) (result, error) {
		q.CopyFrom(r.queue(st.Other))
		return result{}, nil
	},
	OpMove: func(r *Runner, q *queue, st Step) (result, error) {
		q.MoveFrom(r.queue(st.Other))
		return result{}, nil
	},
	OpSwap: func(r *Runner, q *queue, st Step) (result, error) {
		q.Swap(r.queue(st.Other))
		return result{}, nil
	},
	OpCompare: func(r *Runner, q *queue, st Step) (result, error) {
		return result{value: q.Compare(r.queue(st.Other)), ok: true}, nil
	},
}

func valued(v int, err error) (result, error) {
	if err != nil {
		return result{}, err
	}
	return result{value: v, ok: true}, nil
}

func boolean(b bool) result {
	if b {
		return result{value: 1, ok: true}
	}
	return result{value: 0, ok: true}
}

// Runner replays scenarios against named integer queues. Queues are created
// on first use and persist across runs of the same Runner.
type Runner struct {
	logger *zap.Logger
	opts   []priority.Option
	queues map[string]*queue
}

// NewRunner creates a runner. opts are applied to every queue it creates.
func NewRunner(logger *zap.Logger, opts ...priority.Option) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		logger: logger,
		opts:   opts,
		queues: make(map[string]*queue),
	}
}

func (r *Runner) queue(name string) *queue {
	name = queueName(name)
	q, ok := r.queues[name]
	if !ok {
		q = priority.NewOrdered[int, int](r.opts...)
		r.queues[name] = q
	}
	return q
}

// Queues returns the names of all queues touched so far, sorted.
func (r *Runner) Queues() []string {
	return slices.Sorted(maps.Keys(r.queues))
}

// Snapshot formats the named queue in key order.
func (r *Runner) Snapshot(name string) string {
	return r.queue(name).String()
}

// Run executes every step of s in order and stops at the first step whose
// outcome differs from its expectation.
func (r *Runner) Run(ctx context.Context, s Scenario) error {
	if err := s.validate(); err != nil {
		return err
	}
	logger := r.logger.With(zap.String("scenario", s.Name))

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("scenario %s interrupted: %w", s.Name, err)
		}
		if err := r.step(logger, i, st); err != nil {
			logger.Error("step failed", zap.Int("step", i), zap.Error(err))
			return err
		}
	}

	logger.Info("scenario complete", zap.Int("steps", len(s.Steps)))
	return nil
}

func (r *Runner) step(logger *zap.Logger, i int, st Step) error {
	q := r.queue(st.Queue)
	res, err := ops[st.Op](r, q, st)

	fields := []zap.Field{
		zap.Int("step", i),
		zap.String("op", st.Op),
		zap.String("queue", queueName(st.Queue)),
		zap.Int("size", q.Len()),
	}
	if res.ok {
		fields = append(fields, zap.Int("result", res.value))
	}
	if err != nil {
		fields = append(fields, zap.NamedError("queue_error", err))
	}
	logger.Debug("step", fields...)

	switch got := errorKind(err); {
	case st.Error == ErrorNone && err != nil:
		return &StepError{Index: i, Op: st.Op, Err: err}
	case got != st.Error:
		return &StepError{Index: i, Op: st.Op, Err: fmt.Errorf("%w: error %q, want %q", ErrMismatch, got, st.Error)}
	}
	if st.Expect != nil && (!res.ok || res.value != *st.Expect) {
		return &StepError{Index: i, Op: st.Op, Err: fmt.Errorf("%w: result %d, want %d", ErrMismatch, res.value, *st.Expect)}
	}
	return nil
}

func errorKind(err error) string {
	switch {
	case err == nil:
		return ErrorNone
	case errors.Is(err, priority.ErrEmpty):
		return ErrorEmpty
	case errors.Is(err, priority.ErrNotFound):
		return ErrorNotFound
	default:
		return ErrorNone
	}
}

func queueName(name string) string {
	if name == "" {
		return DefaultQueue
	}
	return name
}
