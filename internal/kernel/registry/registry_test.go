package registry

import (
	"testing"
	"unsafe"

	"github.com/cwbudde/algo-alignbench/internal/cpu"
)

func nop(dst, a, b []float32) {}

func testRegistry() *Registry {
	reg := &Registry{}
	// Registered out of priority order on purpose.
	reg.Register(Entry{Name: "unaligned", Family: FamilyVector, SIMDLevel: cpu.SIMDAVX, Priority: 20, Width: 8, Add: nop})
	reg.Register(Entry{Name: "generic", Family: FamilyScalar, SIMDLevel: cpu.SIMDNone, Priority: 0, Width: 1, Add: nop})
	reg.Register(Entry{Name: "aligned", Family: FamilyVector, SIMDLevel: cpu.SIMDAVX, Priority: 30, Alignment: 32, Width: 8, Add: nop})
	return reg
}

// offsetView returns an n-element view whose address is offset bytes past a
// 32-byte boundary. offset must be a multiple of 4.
func offsetView(n, offset int) []float32 {
	raw := make([]float32, n+32)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	skip := int((32-addr%32)%32) / 4
	skip += offset / 4
	return raw[skip : skip+n]
}

func TestRegistry_Lookup(t *testing.T) {
	reg := testRegistry()

	aligned := offsetView(16, 0)
	misaligned := offsetView(16, 16)

	avx := cpu.Features{HasSSE2: true, HasAVX: true, Architecture: "amd64"}

	tests := []struct {
		name     string
		features cpu.Features
		family   Family
		operand  []float32
		want     string
	}{
		{"aligned operands pick aligned kernel", avx, FamilyVector, aligned, "aligned"},
		{"misaligned operands fall back to unaligned", avx, FamilyVector, misaligned, "unaligned"},
		{"scalar family", avx, FamilyScalar, misaligned, "generic"},
		{"no avx, no vector kernel", cpu.Features{HasSSE2: true}, FamilyVector, aligned, ""},
		{"forced generic, no vector kernel", cpu.Features{HasAVX: true, ForceGeneric: true}, FamilyVector, aligned, ""},
		{"forced generic keeps scalar", cpu.Features{HasAVX: true, ForceGeneric: true}, FamilyScalar, aligned, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features, tt.family, tt.operand, tt.operand, tt.operand)
			if tt.want == "" {
				if entry != nil {
					t.Fatalf("expected no entry, got %q", entry.Name)
				}
				return
			}
			if entry == nil {
				t.Fatalf("Lookup returned nil, want %q", tt.want)
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestRegistry_LookupMixedOperands(t *testing.T) {
	reg := testRegistry()
	avx := cpu.Features{HasAVX: true}

	// One misaligned operand disqualifies the aligned kernel.
	entry := reg.Lookup(avx, FamilyVector, offsetView(8, 0), offsetView(8, 0), offsetView(8, 16))
	if entry == nil || entry.Name != "unaligned" {
		t.Fatalf("expected unaligned, got %v", entry)
	}
}

func TestRegistry_SupportedAndList(t *testing.T) {
	reg := testRegistry()

	if got := len(reg.ListEntries()); got != 3 {
		t.Fatalf("expected 3 entries, got %d", got)
	}

	supported := reg.Supported(cpu.Features{HasAVX: true})
	if len(supported) != 3 {
		t.Fatalf("expected 3 supported entries, got %d", len(supported))
	}
	for i := 1; i < len(supported); i++ {
		if supported[i-1].Priority < supported[i].Priority {
			t.Errorf("entries not sorted by priority: %q before %q", supported[i-1].Name, supported[i].Name)
		}
	}

	if got := reg.Supported(cpu.Features{}); len(got) != 1 || got[0].Name != "generic" {
		t.Errorf("without SIMD expected only generic, got %v", got)
	}

	reg.Reset()
	if got := len(reg.ListEntries()); got != 0 {
		t.Errorf("expected empty registry after Reset, got %d", got)
	}
}

func TestEntry_Accepts(t *testing.T) {
	e := Entry{Alignment: 32}
	if !e.Accepts(nil, nil, nil) {
		t.Error("empty operands should be accepted")
	}
	if e.Accepts(offsetView(8, 4), offsetView(8, 0), offsetView(8, 0)) {
		t.Error("misaligned dst accepted")
	}

	loose := Entry{}
	if !loose.Accepts(offsetView(8, 4), offsetView(8, 8), offsetView(8, 12)) {
		t.Error("entry without alignment rejected operands")
	}
}

func TestFamilyString(t *testing.T) {
	if FamilyScalar.String() != "Scalar" || FamilyVector.String() != "SIMD" || Family(7).String() != "Unknown" {
		t.Error("unexpected family labels")
	}
}
