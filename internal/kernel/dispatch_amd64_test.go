//go:build amd64 && !purego

package kernel

import (
	"testing"

	"github.com/cwbudde/algo-alignbench/internal/arena"
	"github.com/cwbudde/algo-alignbench/internal/cpu"
	"github.com/cwbudde/algo-alignbench/internal/kernel/registry"
)

func TestSelect_AMD64Modes(t *testing.T) {
	l, err := arena.NewLayout(16)
	if err != nil {
		t.Fatal(err)
	}
	aligned, err := l.Triple(0)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"generic-forced", cpu.Features{HasSSE2: true, HasAVX: true, ForceGeneric: true, Architecture: "amd64"}, ""},
		{"sse2-only", cpu.Features{HasSSE2: true, Architecture: "amd64"}, ""},
		{"avx", cpu.Features{HasSSE2: true, HasAVX: true, Architecture: "amd64"}, "avx-aligned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tt.features)
			defer cpu.ResetDetection()

			entry := Select(cpu.DetectFeatures(), registry.FamilyVector, aligned.Result, aligned.A, aligned.B)
			got := ""
			if entry != nil {
				got = entry.Name
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
