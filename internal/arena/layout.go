package arena

import "fmt"

// Triple is one set of working buffers: inputs A and B and the Result, all
// of the same length and at the same offset from their arena's base.
type Triple struct {
	A, B, Result []float32
}

// Len returns the element count of the triple.
func (t Triple) Len() int { return len(t.A) }

// Layout owns the three arenas of a benchmark run.
type Layout struct {
	a, b, result *Arena
}

// NewLayout allocates one arena per role.
func NewLayout(n int, opts ...Option) (*Layout, error) {
	a, err := New(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("input a: %w", err)
	}
	b, err := New(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("input b: %w", err)
	}
	result, err := New(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("result: %w", err)
	}
	return &Layout{a: a, b: b, result: result}, nil
}

// Triple returns the views of all three arenas at offset.
func (l *Layout) Triple(offset int) (Triple, error) {
	a, err := l.a.View(offset)
	if err != nil {
		return Triple{}, err
	}
	b, err := l.b.View(offset)
	if err != nil {
		return Triple{}, err
	}
	result, err := l.result.View(offset)
	if err != nil {
		return Triple{}, err
	}
	return Triple{A: a, B: b, Result: result}, nil
}

// Arenas returns the A, B and Result arenas.
func (l *Layout) Arenas() (a, b, result *Arena) {
	return l.a, l.b, l.result
}
