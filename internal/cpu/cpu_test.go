package cpu

import (
	"runtime"
	"testing"
)

func TestSupports(t *testing.T) {
	avx := Features{HasSSE2: true, HasAVX: true, Architecture: "amd64"}

	tests := []struct {
		name     string
		features Features
		level    SIMDLevel
		want     bool
	}{
		{"none always", Features{}, SIMDNone, true},
		{"avx present", avx, SIMDAVX, true},
		{"avx2 absent", avx, SIMDAVX2, false},
		{"sse2 present", avx, SIMDSSE2, true},
		{"neon on amd64", avx, SIMDNEON, false},
		{"forced generic hides avx", Features{HasAVX: true, ForceGeneric: true}, SIMDAVX, false},
		{"forced generic keeps none", Features{HasAVX: true, ForceGeneric: true}, SIMDNone, true},
		{"unknown level", avx, SIMDLevel(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Errorf("Supports(%+v, %s) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestForcedFeatures(t *testing.T) {
	defer ResetDetection()

	SetForcedFeatures(Features{HasAVX: true, Architecture: "test"})
	if got := DetectFeatures(); got.Architecture != "test" || !got.HasAVX {
		t.Fatalf("forced features not returned: %+v", got)
	}
	if !HasAVX() {
		t.Error("HasAVX() = false with forced AVX")
	}

	ResetDetection()
	if got := DetectFeatures(); got.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q after reset, want %q", got.Architecture, runtime.GOARCH)
	}
}

func TestSIMDLevelString(t *testing.T) {
	levels := map[SIMDLevel]string{
		SIMDNone:      "None",
		SIMDSSE2:      "SSE2",
		SIMDAVX:       "AVX",
		SIMDAVX2:      "AVX2",
		SIMDAVX512:    "AVX-512",
		SIMDNEON:      "NEON",
		SIMDLevel(42): "Unknown",
	}
	for level, want := range levels {
		if got := level.String(); got != want {
			t.Errorf("SIMDLevel(%d).String() = %q, want %q", int(level), got, want)
		}
	}
}
