package magnetism

import (
	"fmt"
	"strings"
)

// Scheme selects which magnetic variants Magnetize produces.
type Scheme int

const (
	// SchemePreserve keeps the input moments untouched ("preserve").
	SchemePreserve Scheme = iota
	// SchemeFM produces only the ferromagnetic variant ("FM").
	SchemeFM
	// SchemeAFM produces only antiferromagnetic variants ("AFM").
	SchemeAFM
	// SchemeFMAFM produces the ferromagnetic variant followed by AFM ones ("FM+AFM").
	SchemeFMAFM
)

var schemeNames = [...]string{
	SchemePreserve: "preserve",
	SchemeFM:       "FM",
	SchemeAFM:      "AFM",
	SchemeFMAFM:    "FM+AFM",
}

// String returns the configuration name of the scheme.
func (s Scheme) String() string {
	if s < 0 || int(s) >= len(schemeNames) {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}

	return schemeNames[s]
}

// SchemeNames lists the accepted configuration names in declaration order.
func SchemeNames() []string {
	return append([]string(nil), schemeNames[:]...)
}

// ParseScheme maps a configuration name to a Scheme. Matching is exact after
// trimming surrounding whitespace ("FM+AFM", not "fm+afm").
func ParseScheme(name string) (Scheme, error) {
	name = strings.TrimSpace(name)
	for i, n := range schemeNames {
		if n == name {
			return Scheme(i), nil
		}
	}

	return 0, fmt.Errorf("%s: %q (allowed %v): %w", methodParseScheme, name, SchemeNames(), ErrUnsupportedScheme)
}
