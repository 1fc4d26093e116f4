// Package cpu detects the SIMD extensions that decide which addition
// strategies are active in a benchmark run.
//
// Detection runs once, lazily, and is cached. Tests can replace the detected
// features with SetForcedFeatures and restore them with ResetDetection.
package cpu

import (
	"sync"
)

// SIMDLevel names the instruction set an addition strategy requires.
type SIMDLevel int

const (
	// SIMDNone is plain Go, available everywhere.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 is the x86-64 baseline (128-bit).
	SIMDSSE2

	// SIMDAVX provides 256-bit float registers: eight float32 lanes.
	SIMDAVX

	// SIMDAVX2 adds 256-bit integer operations and FMA-era cores.
	SIMDAVX2

	// SIMDAVX512 is the 512-bit x86-64 extension.
	SIMDAVX512

	// SIMDNEON is ARM Advanced SIMD (128-bit).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to strategy selection.
type Features struct {
	HasSSE2   bool
	HasAVX    bool // includes OS support for saving YMM state
	HasAVX2   bool
	HasAVX512 bool

	HasNEON bool

	// ForceGeneric restricts selection to SIMDNone strategies.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	detected   Features
	detectOnce sync.Once
	detectMu   sync.Mutex

	forced   *Features
	forcedMu sync.RWMutex
)

// DetectFeatures returns the features of the running CPU, or the forced
// features if SetForcedFeatures was called.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()

	if f != nil {
		return *f
	}

	detectMu.Lock()
	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	features := detected
	detectMu.Unlock()

	return features
}

// HasAVX reports whether 256-bit float vector instructions are usable.
func HasAVX() bool {
	return DetectFeatures().HasAVX
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	ff := f
	forced = &ff
}

// ResetDetection clears forced features and the detection cache.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()

	detectMu.Lock()
	detectOnce = sync.Once{}
	detected = Features{}
	detectMu.Unlock()
}

// Supports reports whether features satisfy level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
