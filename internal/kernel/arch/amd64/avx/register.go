//go:build amd64 && !purego

package avx

import (
	"github.com/cwbudde/algo-alignbench/internal/cpu"
	"github.com/cwbudde/algo-alignbench/internal/kernel/registry"
)

// init registers both AVX variants. The aligned one outranks the unaligned
// one, so it is picked whenever all three operands sit on a 32-byte boundary.
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "avx-aligned",
		Family:    registry.FamilyVector,
		SIMDLevel: cpu.SIMDAVX,
		Priority:  30,
		Alignment: Alignment,
		Width:     registry.VectorWidth,
		Add:       AddAligned,
	})
	registry.Global.Register(registry.Entry{
		Name:      "avx-unaligned",
		Family:    registry.FamilyVector,
		SIMDLevel: cpu.SIMDAVX,
		Priority:  20,
		Width:     registry.VectorWidth,
		Add:       AddUnaligned,
	})
}
