//go:build amd64 && !purego

package kernel

// Importing the arch packages runs their init() registrations.

import (
	_ "github.com/cwbudde/algo-alignbench/internal/kernel/arch/amd64/avx"
	_ "github.com/cwbudde/algo-alignbench/internal/kernel/arch/generic"
)
