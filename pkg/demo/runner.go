package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Runner executes demos from a registry with logging and timing.
type Runner struct {
	registry *Registry
	logger   *log.Logger
}

// NewRunner creates a runner. A nil logger disables logging.
func NewRunner(registry *Registry, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{registry: registry, logger: logger}
}

// Result describes one executed demo.
type Result struct {
	Name    string
	Elapsed time.Duration
}

// RunOne executes the named demo, writing its narrative to w.
func (r *Runner) RunOne(ctx context.Context, name string, w io.Writer) (Result, error) {
	d, err := r.registry.Lookup(name)
	if err != nil {
		return Result{}, err
	}
	return r.run(ctx, d, w)
}

// RunAll executes every registered demo in order, stopping at the first
// error or context cancellation. When topic is non-empty only demos with
// that topic run.
func (r *Runner) RunAll(ctx context.Context, topic Topic, w io.Writer) ([]Result, error) {
	demos := r.registry.All()
	if topic != "" {
		demos = r.registry.ByTopic(topic)
	}

	results := make([]Result, 0, len(demos))
	for _, d := range demos {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := r.run(ctx, d, w)
		if err != nil {
			return results, fmt.Errorf("demo %s: %w", d.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) run(ctx context.Context, d Demo, w io.Writer) (Result, error) {
	r.logger.Debugf("Running demo %s", d.Name)
	start := time.Now()

	fmt.Fprintf(w, "=== %s ===\n", d.Name)
	if err := d.Run(ctx, w); err != nil {
		return Result{}, err
	}
	fmt.Fprintln(w)

	elapsed := time.Since(start)
	r.logger.Infof("Completed %s (%s)", d.Name, elapsed.Round(time.Millisecond))
	return Result{Name: d.Name, Elapsed: elapsed}, nil
}
