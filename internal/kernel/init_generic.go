//go:build !amd64 || purego

package kernel

// Without an 8-wide float32 kernel for the target only the scalar strategy
// is registered.

import (
	_ "github.com/cwbudde/algo-alignbench/internal/kernel/arch/generic"
)
