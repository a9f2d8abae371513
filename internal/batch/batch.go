package batch

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/organiclever/the-organic/internal/ui"
)

// Outcome is the result of one item.
type Outcome int

const (
	Succeeded Outcome = iota
	Skipped
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Failure records the error of one item.
type Failure struct {
	Name string
	Err  error
}

func (f Failure) Error() string { return fmt.Sprintf("%s: %v", f.Name, f.Err) }

func (f Failure) Unwrap() error { return f.Err }

// Result summarizes a batch.
type Result struct {
	Total     int
	Succeeded int
	Skipped   int
	Failures  []Failure // input order
}

// OK reports whether no item failed.
func (r *Result) OK() bool { return len(r.Failures) == 0 }

// Err returns nil when no item failed, otherwise an error combining every
// failure.
func (r *Result) Err() error {
	var err error
	for _, f := range r.Failures {
		err = multierr.Append(err, f)
	}
	return err
}

// Options configures Run. Name is required; the rest is optional.
type Options[T any] struct {
	// Workers bounds concurrency. Values below 1 use DefaultWorkers.
	Workers int
	// Name identifies an item in failures and progress lines.
	Name func(T) string
	// Eligible, when set, marks items for which it returns false as skipped
	// without calling op.
	Eligible func(T) bool
	// Progress receives one line per finished item.
	Progress *ui.Progress
}

// DefaultWorkers leaves one CPU free and never returns less than 1.
func DefaultWorkers() int {
	return max(1, runtime.NumCPU()-1)
}

// Run calls op for every item with at most opts.Workers calls in flight and
// returns once all items have been attempted. Errors from op are recorded
// against the item and do not cancel the rest of the batch.
func Run[T any](ctx context.Context, items []T, op func(context.Context, T) error, opts Options[T]) *Result {
	workers := opts.Workers
	if workers < 1 {
		workers = DefaultWorkers()
	}

	outcomes := make([]Outcome, len(items))
	errs := make([]error, len(items))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, item := range items {
		g.Go(func() error {
			name := opts.Name(item)
			if opts.Eligible != nil && !opts.Eligible(item) {
				outcomes[i] = Skipped
				opts.Progress.Done(name, ui.StatusSkipped)
				return nil
			}
			if err := op(ctx, item); err != nil {
				outcomes[i], errs[i] = Failed, err
				opts.Progress.Done(name, ui.StatusFailed)
				return nil
			}
			outcomes[i] = Succeeded
			opts.Progress.Done(name, ui.StatusOK)
			return nil
		})
	}
	_ = g.Wait() // op errors are kept per item

	res := &Result{Total: len(items)}
	for i, o := range outcomes {
		switch o {
		case Succeeded:
			res.Succeeded++
		case Skipped:
			res.Skipped++
		case Failed:
			res.Failures = append(res.Failures, Failure{Name: opts.Name(items[i]), Err: errs[i]})
		}
	}
	return res
}
