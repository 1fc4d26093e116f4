package generic

import (
	"github.com/cwbudde/algo-alignbench/internal/cpu"
	"github.com/cwbudde/algo-alignbench/internal/kernel/registry"
)

// init registers the scalar strategy. It is always available and is the only
// entry left when ForceGeneric is set or the build uses the purego tag.
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "generic",
		Family:    registry.FamilyScalar,
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Width:     1,
		Add:       Add,
	})
}
