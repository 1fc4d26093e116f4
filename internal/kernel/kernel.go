// Package kernel exposes the addition strategies registered for the build
// target and picks one per family for a given set of operands.
package kernel

import (
	"github.com/cwbudde/algo-alignbench/internal/cpu"
	"github.com/cwbudde/algo-alignbench/internal/kernel/registry"
)

// Families lists the strategy families in report order.
var Families = []registry.Family{registry.FamilyScalar, registry.FamilyVector}

// Select returns the best strategy of family for the operands, or nil if
// none is available.
func Select(features cpu.Features, family registry.Family, dst, a, b []float32) *registry.Entry {
	return registry.Global.Lookup(features, family, dst, a, b)
}

// Strategies returns every registered strategy features can run.
func Strategies(features cpu.Features) []registry.Entry {
	return registry.Global.Supported(features)
}
