// Package registry holds the addition strategies available to the benchmark.
//
// Each strategy is tagged with the SIMD level it needs and the operand
// alignment it assumes. Architecture packages register their strategies from
// init(), and the runner asks the registry for the best strategy of a family
// given the detected CPU features and the actual operand addresses. A strategy
// the CPU cannot run, or whose alignment the operands violate, is simply not
// selected.
package registry

import (
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-alignbench/internal/cpu"
)

// VectorWidth is the number of float32 lanes a vector strategy handles per
// step. Vector lengths handed to the runner must be a multiple of it.
const VectorWidth = 8

// Family groups strategies the runner reports under one label.
type Family int

const (
	// FamilyScalar computes one element per step.
	FamilyScalar Family = iota

	// FamilyVector computes VectorWidth elements per step.
	FamilyVector
)

// String returns the report label of the family.
func (f Family) String() string {
	switch f {
	case FamilyScalar:
		return "Scalar"
	case FamilyVector:
		return "SIMD"
	default:
		return "Unknown"
	}
}

// AddFn computes dst[i] = a[i] + b[i].
type AddFn func(dst, a, b []float32)

// Entry is one registered addition strategy.
type Entry struct {
	// Name identifies the kernel, e.g. "generic" or "avx-aligned".
	Name string

	Family Family

	// SIMDLevel is the instruction set the kernel needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries of a family. Higher wins.
	//   - generic: 0
	//   - unaligned vector: 20
	//   - aligned vector: 30
	Priority int

	// Alignment is the byte boundary every operand must start on.
	// Zero means the kernel accepts any address.
	Alignment uintptr

	// Width is the number of elements processed per step.
	Width int

	Add AddFn
}

// Accepts reports whether the operands satisfy the entry's alignment
// precondition.
func (e *Entry) Accepts(dst, a, b []float32) bool {
	if e.Alignment <= 1 {
		return true
	}
	return aligned(dst, e.Alignment) && aligned(a, e.Alignment) && aligned(b, e.Alignment)
}

func aligned(s []float32, alignment uintptr) bool {
	if len(s) == 0 {
		return true
	}
	return Addr(s)%alignment == 0
}

// Addr returns the address of the first element of s, or 0 for an empty slice.
func Addr(s []float32) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))
}

// Registry stores the registered strategies.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool
}

// Global is the registry the architecture packages register into.
var Global = &Registry{}

// Register adds an entry. It is called from init() functions; all
// registrations should complete before the first Lookup.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry of family that features support
// and whose alignment precondition dst, a and b meet. It returns nil when no
// such entry exists, which is the normal outcome for FamilyVector on CPUs
// without the required extension.
func (r *Registry) Lookup(features cpu.Features, family Family, dst, a, b []float32) *Entry {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if entry.Family != family || !cpu.Supports(features, entry.SIMDLevel) {
			continue
		}
		if entry.Accepts(dst, a, b) {
			return entry
		}
	}

	return nil
}

// Supported returns the entries features can run, sorted by priority.
func (r *Registry) Supported(features cpu.Features) []Entry {
	r.sortOnce()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for _, e := range r.entries {
		if cpu.Supports(features, e.SIMDLevel) {
			out = append(out, e)
		}
	}
	return out
}

func (r *Registry) sortOnce() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by descending priority. Must be called with
// r.mu held. Insertion sort keeps registration order among equal priorities.
func (r *Registry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
func (r *Registry) ListEntries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
