//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reports NEON on arm64. There is no 8-wide float32
// strategy for it, so arm64 runs scalar only.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
