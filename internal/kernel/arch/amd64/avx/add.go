//go:build amd64 && !purego

// Package avx provides 8-wide float32 addition using 256-bit AVX registers.
//
// Two variants exist. AddAligned uses aligned loads and stores (VMOVAPS) and
// requires every operand to start on a 32-byte boundary. AddUnaligned uses
// VMOVUPS and accepts any address, including ones that are not a multiple of
// the element size.
package avx

import (
	"github.com/cwbudde/algo-alignbench/internal/kernel/registry"
)

// Alignment is the operand alignment AddAligned requires.
const Alignment = 32

// AddAligned performs dst[i] = a[i] + b[i] with aligned vector accesses.
// Slices must have equal length and start on a 32-byte boundary. Panics
// otherwise, rather than letting the CPU fault on VMOVAPS.
func AddAligned(dst, a, b []float32) {
	checkLengths(dst, a, b)
	if len(dst) == 0 {
		return
	}
	if !isAligned(dst) || !isAligned(a) || !isAligned(b) {
		panic("kernel: avx-aligned operand is not 32-byte aligned")
	}
	n := vectorPart(len(dst))
	if n > 0 {
		addAlignedAVX(dst[:n], a[:n], b[:n])
	}
	addTail(dst, a, b, n)
}

// AddUnaligned performs dst[i] = a[i] + b[i] with unaligned vector accesses.
// Slices must have equal length. Panics if lengths differ.
func AddUnaligned(dst, a, b []float32) {
	checkLengths(dst, a, b)
	if len(dst) == 0 {
		return
	}
	n := vectorPart(len(dst))
	if n > 0 {
		addUnalignedAVX(dst[:n], a[:n], b[:n])
	}
	addTail(dst, a, b, n)
}

func checkLengths(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("kernel: slice length mismatch")
	}
}

func isAligned(s []float32) bool {
	return registry.Addr(s)%Alignment == 0
}

// vectorPart rounds n down to a whole number of vector steps.
func vectorPart(n int) int {
	return n &^ (registry.VectorWidth - 1)
}

func addTail(dst, a, b []float32, from int) {
	for i := from; i < len(dst); i++ {
		dst[i] = a[i] + b[i]
	}
}

// Implemented in add_amd64.s. len(dst) must be a multiple of 8.

//go:noescape
func addAlignedAVX(dst, a, b []float32)

//go:noescape
func addUnalignedAVX(dst, a, b []float32)
