package names_test

import (
	"testing"

	"github.com/exotools/exocat/pkg/names"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"all-caps kepler", "KEPLER-16 (AB) b", "Kepler-16 (AB) b"},
		{"tres case", "TRES-4", "TrES-4"},
		{"wolf hyphen", "WOLF-503", "Wolf 503"},
		{"hatp prefix", "HATP26", "HAT-P-26"},
		{"au mic", "AU-MIC", "AU Mic"},
		{"gl synonym", "GL486", "GJ 486"},
		{"gj hyphen", "GJ-1214", "GJ 1214"},
		{"gj unspaced", "GJ1214", "GJ 1214"},
		{"hd unspaced", "HD189733", "HD 189733"},
		{"ltt not single-l", "LTT-1445", "LTT 1445"},
		{"hip hyphen", "HIP-65526", "HIP 65526"},
		{"2mass prefix", "2MASS-J0336+1853", "2MASS J0336+1853"},
		{"repeated prefix runs", "LP-145-LP-141", "LP 145-LP 141"},
		{"cd signed", "CD-38-2551", "CD-38 2551"},
		{"bd plus signed", "BD+05-4868", "BD+05 4868"},
		{"trailing component", "TOI-1452A", "TOI-1452 A"},
		{"spaced component kept", "LTT 1445 A", "LTT 1445 A"},
		{"55 cnc", "55CNC", "55 Cnc"},
		{"rho cnc", "RHO01-CNC", "55 Cnc"},
		{"offset decoration", "WASP-80-offset", "WASP-80"},
		{"updated decoration", "GJ 367-updated", "GJ 367"},
		{"trailing hyphen", "WASP-107-", "WASP-107"},
		{"wd 1856", "WD-1856", "WD 1856+534"},
		{"v1298", "V1298-TAU", "V1298 Tau"},
		{"whitespace runs", "HAT-P-14   b", "HAT-P-14 b"},
		{"empty", "", ""},
		{"plain name untouched", "WASP-69 b", "WASP-69 b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names.Normalize(tt.raw))
		})
	}
}

// Normalization must be idempotent: a second pass is a no-op.
func TestNormalizeIdempotent(t *testing.T) {
	raws := []string{
		"KEPLER-16 (AB) b", "WOLF-503", "HATP26", "GL486", "GJ1214",
		"HD189733", "CD-38-2551", "BD+05-4868", "TOI-1452A", "55CNC",
		"WASP-80-offset", "WD-1856", "V1298-TAU", "2MASS-J0336+1853",
		"LTT-1445", "LP-145-LP-141", "", "x", "WASP-69 b", "TOI-741.01",
	}
	for _, raw := range raws {
		once := names.Normalize(raw)
		assert.Equal(t, once, names.Normalize(once), "raw: %q", raw)
	}
}

func TestIsLetter(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"WASP-69 b", true},
		{"Kepler-16 b", true},
		{"WASP69b", false},
		{"TOI-741.01", false},
		{"WASP-69", false},
		{"b", false},
		{"", false},
		{"HD 80606 1", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, names.IsLetter(tt.raw), tt.raw)
	}
}

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"TOI-741.01", true},
		{"TOI-5205.02", true},
		{"WASP-69 b", false},
		{"TOI-741", false},
		{".0", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, names.IsCandidate(tt.raw), tt.raw)
	}
}

func TestLetter(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"WASP-69 b", " b"},
		{"TOI-741.01", ".01"},
		{"WASP-69", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, names.Letter(tt.raw), tt.raw)
	}
}

func TestHost(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"WASP-69 b", "WASP-69"},
		{"TOI-741.01", "TOI-741"},
		{"GJ 1214", "GJ 1214"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, names.Host(tt.raw), tt.raw)
	}
}
