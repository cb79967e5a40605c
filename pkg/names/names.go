// Package names normalizes raw exoplanet target designations into the
// canonical spelling used as the identity key across the catalog.
// This is a pure package - normalization is computation, not I/O.
//
// Normalization is total, deterministic and idempotent. Malformed input
// degrades to a best-effort rewrite; it never fails. The returned string
// is opaque downstream: no other package performs name surgery.
package names

import (
	"regexp"
	"strings"
	"unicode"
)

var spaceRun = regexp.MustCompile(`\s+`)

// caseFixes repairs a closed set of all-caps catalog prefixes that
// observation logs tend to upcase.
var caseFixes = [][2]string{
	{"KEPLER", "Kepler"},
	{"TRES", "TrES"},
	{"WOLF-", "Wolf "},
	{"HATP", "HAT-P-"},
	{"AU-MIC", "AU Mic"},
}

// spacedPrefixes are survey/catalog prefixes that take a single space
// (never a hyphen) before the object number. Order matters: single-letter
// prefixes rely on the following-character check to let longer prefixes
// through.
var spacedPrefixes = []string{
	"L", "G", "HD", "GJ", "LTT", "LHS", "HIP", "WD", "LP", "2MASS", "PSR",
}

// signedPrefixes use signed declination zones; the separator to fix is
// the first hyphen after the sign, not the sign itself.
var signedPrefixes = []string{"CD-", "BD-", "BD+"}

// Normalize rewrites a raw catalog name into its canonical form.
// The rule pipeline runs in fixed order; later rules depend on the
// output of earlier ones.
func Normalize(raw string) string {
	name := spaceRun.ReplaceAllString(raw, " ")

	for _, fix := range caseFixes {
		name = strings.ReplaceAll(name, fix[0], fix[1])
	}

	// GL is a synonym of the GJ catalog prefix.
	name = strings.ReplaceAll(name, "GL", "GJ")

	for _, prefix := range spacedPrefixes {
		plen := len(prefix)
		if len(name) <= plen || !strings.HasPrefix(name, prefix) {
			continue
		}
		if isAlpha(rune(name[plen])) {
			continue
		}
		name = strings.ReplaceAll(name, prefix+"-", prefix+" ")
		if name[plen] != ' ' {
			name = prefix + " " + name[plen:]
		}
	}

	for _, prefix := range signedPrefixes {
		plen := len(prefix)
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if loc := strings.Index(name[plen:], "-"); loc >= 0 {
			dash := plen + loc
			name = name[:dash] + " " + name[dash+1:]
		}
	}

	// Unspaced trailing 'A' is a binary-component designation.
	if n := len(name); n >= 2 && strings.HasSuffix(name, "A") &&
		!unicode.IsSpace(rune(name[n-2])) {
		name = name[:n-1] + " A"
	}

	// Hand-curated corrections for known pathological names.
	if name == "55CNC" || name == "RHO01-CNC" {
		name = "55 Cnc"
	}
	name = strings.ReplaceAll(name, "-offset", "")
	name = strings.ReplaceAll(name, "-updated", "")
	name = strings.TrimSuffix(name, "-")
	if name == "WD 1856" {
		name = "WD 1856+534"
	}
	if strings.Contains(name, "V1298") {
		name = "V1298 Tau"
	}

	return name
}

// IsLetter reports whether name carries a confirmed-planet designation:
// a lower-case letter preceded by a blank ("WASP-69 b"). Names shorter
// than two characters are never planets.
func IsLetter(name string) bool {
	if len(name) < 2 {
		return false
	}
	return unicode.IsLower(rune(name[len(name)-1])) && name[len(name)-2] == ' '
}

// IsCandidate reports whether name carries a candidate designation:
// a dot followed by two digits ("TOI-741.01").
func IsCandidate(name string) bool {
	if len(name) < 3 {
		return false
	}
	return name[len(name)-3] == '.' &&
		isDigit(name[len(name)-2]) && isDigit(name[len(name)-1])
}

// Letter extracts the planet designation suffix: the blank+letter pair
// for confirmed planets, the dot suffix for candidates, an empty string
// for host-only names. Planets of one host share everything but this
// suffix.
func Letter(name string) string {
	if IsLetter(name) {
		return name[len(name)-2:]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[idx:]
	}
	return ""
}

// Host strips the planet designation, returning the host star name.
// Host-only names pass through unchanged.
func Host(name string) string {
	if IsLetter(name) {
		return name[:len(name)-2]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		return name[:idx]
	}
	return name
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
