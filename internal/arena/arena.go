package arena

import (
	"errors"
	"fmt"
	"math"
	"unsafe"
)

var (
	// ErrLength is returned for a non-positive or oversized element count.
	ErrLength = errors.New("arena: invalid element count")

	// ErrAlignment is returned when the alignment is not a power of two.
	ErrAlignment = errors.New("arena: alignment must be a power of two")

	// ErrSlack is returned when the slack cannot absorb alignment rounding
	// plus the largest offset.
	ErrSlack = errors.New("arena: insufficient slack")

	// ErrOffset is returned by View for an offset outside [0, MaxOffset].
	ErrOffset = errors.New("arena: offset out of range")
)

// Arena is one over-allocated block with a computed aligned base.
type Arena struct {
	raw  []byte
	base int // index of the aligned base within raw
	n    int
	cfg  Config
}

// New allocates an arena for n float32 elements plus the configured slack.
func New(n int, opts ...Option) (*Arena, error) {
	cfg := applyOptions(opts...)

	if n <= 0 || n > (math.MaxInt-cfg.Slack)/ElemSize {
		return nil, fmt.Errorf("%w: %d", ErrLength, n)
	}
	if cfg.Alignment&(cfg.Alignment-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrAlignment, cfg.Alignment)
	}
	if need := cfg.Alignment - 1 + cfg.MaxOffset; cfg.Slack < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrSlack, cfg.Slack, need)
	}

	raw := make([]byte, n*ElemSize+cfg.Slack)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	mask := uintptr(cfg.Alignment - 1)
	aligned := (addr + mask) &^ mask

	return &Arena{
		raw:  raw,
		base: int(aligned - addr),
		n:    n,
		cfg:  cfg,
	}, nil
}

// View returns the n-element float32 view that starts offset bytes after the
// aligned base. Offsets that are not a multiple of ElemSize are allowed; the
// elements then straddle their natural boundaries.
//
//go:nocheckptr
func (a *Arena) View(offset int) ([]float32, error) {
	if offset < 0 || offset > a.cfg.MaxOffset {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrOffset, offset, a.cfg.MaxOffset)
	}
	start := a.base + offset
	if start+a.n*ElemSize > len(a.raw) {
		// Unreachable while New enforces the slack bound.
		return nil, fmt.Errorf("%w: view [%d, %d) exceeds %d bytes", ErrSlack, start, start+a.n*ElemSize, len(a.raw))
	}
	p := unsafe.Pointer(&a.raw[start])
	return unsafe.Slice((*float32)(p), a.n), nil
}

// Base returns the aligned base address.
func (a *Arena) Base() uintptr {
	return uintptr(unsafe.Pointer(&a.raw[a.base]))
}

// Offset returns the number of bytes the base was rounded up by.
func (a *Arena) Offset() int { return a.base }

// Len returns the element count of every view.
func (a *Arena) Len() int { return a.n }

// Cap returns the size of the raw block in bytes.
func (a *Arena) Cap() int { return len(a.raw) }

// Bounds returns the raw block as a half-open address range.
func (a *Arena) Bounds() (start, end uintptr) {
	start = uintptr(unsafe.Pointer(&a.raw[0]))
	return start, start + uintptr(len(a.raw))
}

// Config returns the geometry the arena was built with.
func (a *Arena) Config() Config { return a.cfg }
