package domain

import (
	"regexp"
	"strings"
)

// Extension is the only file extension section files carry.
const Extension = ".js"

// baseWidth is the minimum number of digits the base number is written with.
const baseWidth = 2

// sectionPattern matches Sec<base>[_<suffix>].js, anchored at both ends.
var sectionPattern = regexp.MustCompile(`^Sec(\d+)(?:_(\d+))?\.js$`)

// Section is the numeric identifier encoded in a section file name.
// Numbers are kept as canonical decimal digits (no leading zeros, "0" for
// zero) so that runs of any length are represented exactly.
// It only exists while one entry is being processed.
type Section struct {
	// Base is the primary section number.
	Base string

	// Suffix is the secondary disambiguator, valid when HasSuffix is set.
	Suffix string

	// HasSuffix reports whether the name carried a _<digits> part.
	HasSuffix bool
}

// Classify parses name as a section file.
// It returns false for any name that does not match the section pattern;
// such names are not errors, they are simply not section files.
// Leading zeros in either number are accepted and dropped.
func Classify(name string) (Section, bool) {
	m := sectionPattern.FindStringSubmatch(name)
	if m == nil {
		return Section{}, false
	}

	s := Section{Base: canonical(m[1])}
	if m[2] != "" {
		s.Suffix = canonical(m[2])
		s.HasSuffix = true
	}
	return s, true
}

// Normalize renders s in canonical form: the base padded to at least two
// digits, the suffix unpadded.
//
//	Section{Base: "3"}                               -> "Sec03.js"
//	Section{Base: "123"}                             -> "Sec123.js"
//	Section{Base: "3", Suffix: "7", HasSuffix: true} -> "Sec03_7.js"
func Normalize(s Section) string {
	base := canonical(s.Base)
	if n := baseWidth - len(base); n > 0 {
		base = strings.Repeat("0", n) + base
	}

	name := "Sec" + base
	if s.HasSuffix {
		name += "_" + canonical(s.Suffix)
	}
	return name + Extension
}

// canonical strips leading zeros from a digit run, keeping a single "0".
func canonical(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
