package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-alignbench/internal/arena"
	"github.com/cwbudde/algo-alignbench/internal/kernel"
	"github.com/cwbudde/algo-alignbench/internal/kernel/registry"
)

var (
	// ErrLength is returned when the buffers or the source do not have the
	// shape the runner expects.
	ErrLength = errors.New("bench: vector length must be a positive multiple of 8")

	// ErrNoStrategy is returned when no scalar strategy is registered.
	ErrNoStrategy = errors.New("bench: no scalar strategy registered")
)

// Condition is one alignment condition of the benchmark.
type Condition struct {
	// Label is the alignment printed in the report, in bytes.
	Label int

	// Offset is the byte offset of the buffers from the aligned base.
	Offset int
}

// Conditions are the three conditions every run covers, in order: exactly
// aligned, 16 bytes off and 11 bytes off. 11 is not a multiple of the
// element size, so every element straddles its natural boundary.
var Conditions = []Condition{
	{Label: 32, Offset: 0},
	{Label: 16, Offset: 16},
	{Label: 11, Offset: 11},
}

// Runner times addition strategies.
type Runner struct {
	cfg Config
}

// New returns a Runner.
func New(opts ...Option) *Runner {
	return &Runner{cfg: applyOptions(opts...)}
}

// Run benchmarks every available strategy family on t and writes one line
// per family. src holds 2*N values: the first half feeds A, the second B.
func (r *Runner) Run(src []float32, t arena.Triple, label int) ([]Report, error) {
	n := t.Len()
	if n <= 0 || n%registry.VectorWidth != 0 || len(t.B) != n || len(t.Result) != n {
		return nil, fmt.Errorf("%w: buffers of %d, %d, %d elements", ErrLength, len(t.A), len(t.B), len(t.Result))
	}
	if len(src) != 2*n {
		return nil, fmt.Errorf("%w: source has %d elements, want %d", ErrLength, len(src), 2*n)
	}

	reports := make([]Report, 0, len(kernel.Families))
	for _, family := range kernel.Families {
		entry := kernel.Select(r.cfg.Features, family, t.Result, t.A, t.B)
		if entry == nil {
			if family == registry.FamilyScalar {
				return reports, ErrNoStrategy
			}
			continue
		}

		rep, err := r.runStrategy(entry, src, t, label)
		if err != nil {
			return reports, err
		}
		if _, err := fmt.Fprintln(r.cfg.Writer, rep); err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

// RunAll runs every condition against the buffers of l.
func (r *Runner) RunAll(src []float32, l *arena.Layout, conds []Condition) ([]Report, error) {
	var reports []Report
	for _, c := range conds {
		t, err := l.Triple(c.Offset)
		if err != nil {
			return reports, fmt.Errorf("%db aligned: %w", c.Label, err)
		}
		reps, err := r.Run(src, t, c.Label)
		reports = append(reports, reps...)
		if err != nil {
			return reports, err
		}
	}
	return reports, nil
}

func (r *Runner) runStrategy(e *registry.Entry, src []float32, t arena.Triple, label int) (Report, error) {
	n := t.Len()
	copy(t.A, src[:n])
	copy(t.B, src[n:2*n])

	// The first run only warms up; its timing is discarded.
	e.Add(t.Result, t.A, t.B)
	elapsed := r.measure(func() { e.Add(t.Result, t.A, t.B) })

	rep := Report{
		Family:    e.Family,
		Kernel:    e.Name,
		Alignment: label,
		Elapsed:   elapsed,
		Sum:       Checksum(t.Result),
	}

	if r.cfg.Verify {
		if err := Verify(t.A, t.B, t.Result); err != nil {
			return rep, fmt.Errorf("%s (%db aligned): %w", e.Name, label, err)
		}
	}
	return rep, nil
}

func (r *Runner) measure(fn func()) time.Duration {
	start := r.cfg.Clock()
	fn()
	return r.cfg.Clock().Sub(start)
}
