package fr

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Dialect selects the French variant used to name 70-99.
type Dialect int

const (
	// StandardDialect is the French of France (soixante-dix, quatre-vingts, quatre-vingt-dix).
	StandardDialect Dialect = iota
	// BelgianDialect is the regular variant (septante, huitante, nonante).
	BelgianDialect
)

const (
	StandardDialectName = "standard"
	BelgianDialectName  = "belgian"
)

// DialectNames lists accepted dialect names in display order.
var DialectNames = []string{StandardDialectName, BelgianDialectName}

var belgium = language.MustParseRegion("BE")

// String returns the configuration name of the dialect.
func (d Dialect) String() string {
	switch d {
	case StandardDialect:
		return StandardDialectName
	case BelgianDialect:
		return BelgianDialectName
	default:
		return fmt.Sprintf("dialect(%d)", int(d))
	}
}

// Valid reports whether d is one of the known dialects.
func (d Dialect) Valid() bool {
	return d == StandardDialect || d == BelgianDialect
}

// ParseDialect accepts a dialect name or a French BCP 47 language tag.
// Tags with the BE region map to the Belgian dialect, other French tags to the standard one.
func ParseDialect(s string) (Dialect, error) {
	value := strings.TrimSpace(s)

	switch strings.ToLower(value) {
	case StandardDialectName:
		return StandardDialect, nil
	case BelgianDialectName:
		return BelgianDialect, nil
	}

	tag, err := language.Parse(value)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown dialect %q", ErrInvalidConfiguration, s)
	}

	base, _ := tag.Base()
	if french, _ := language.French.Base(); base != french {
		return 0, fmt.Errorf("%w: %q is not a French language tag", ErrInvalidConfiguration, s)
	}

	if region, conf := tag.Region(); conf == language.Exact && region == belgium {
		return BelgianDialect, nil
	}

	return StandardDialect, nil
}
