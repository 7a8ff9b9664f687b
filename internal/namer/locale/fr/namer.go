package fr

import (
	"fmt"
	"strings"

	"github.com/frenchnum/frenchnum/internal/namer/locale"
)

// Limit is the first magnitude the grammar cannot name.
const Limit = 1_000_000

const (
	negativePrefix = "moins-"
	hundred        = "cent"
	thousand       = "mille"
	separator      = "-"
	conjunction    = "-et-"
)

// Verify interface compliance in compile time.
var _ locale.Namer = (*Namer)(nil)

// Namer names integers in French. It is read-only after construction
// and may be shared between goroutines.
type Namer struct {
	dialect Dialect
	units   [17]string
	tens    [10]string
}

// NewNamer builds the lexeme tables for the dialect.
func NewNamer(dialect Dialect) (*Namer, error) {
	if !dialect.Valid() {
		return nil, fmt.Errorf("%w: unknown dialect %d", ErrInvalidConfiguration, int(dialect))
	}

	n := &Namer{
		dialect: dialect,
		units: [17]string{
			"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
			"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
		},
		tens: [10]string{
			"", "dix", "vingt", "trente", "quarante", "cinquante", "soixante",
			"soixante-dix", "quatre-vingts", "quatre-vingt-dix",
		},
	}

	if dialect == BelgianDialect {
		n.tens[7] = "septante"
		n.tens[8] = "huitante"
		n.tens[9] = "nonante"
	}

	return n, nil
}

// MustNewNamer is like NewNamer but panics on an unknown dialect.
func MustNewNamer(dialect Dialect) *Namer {
	n, err := NewNamer(dialect)
	if err != nil {
		panic(err)
	}

	return n
}

// Dialect returns the name of the namer dialect.
func (n *Namer) Dialect() string {
	return n.dialect.String()
}

// Name returns the French words for number.
func (n *Namer) Name(number int64) (string, error) {
	if number >= Limit || number <= -Limit {
		return "", fmt.Errorf("%w: %d, magnitude must be below %d", ErrOutOfRange, number, Limit)
	}

	return n.name(number), nil
}

// ConvertAll names every number keeping order and length.
func (n *Namer) ConvertAll(numbers []int64) ([]string, error) {
	words := make([]string, len(numbers))

	for i, number := range numbers {
		w, err := n.Name(number)
		if err != nil {
			return nil, fmt.Errorf("number at index %d: %w", i, err)
		}

		words[i] = w
	}

	return words, nil
}

func (n *Namer) name(number int64) string {
	if number == 0 {
		return n.units[0]
	}

	if number < 0 {
		return negativePrefix + n.name(-number)
	}

	var sb strings.Builder

	hasThousands := false

	if number >= 1000 {
		q := number / 1000
		if q == 1 {
			sb.WriteString(thousand)
		} else {
			sb.WriteString(n.name(q))
			sb.WriteString(separator + thousand)
		}

		number %= 1000
		hasThousands = true

		if number > 0 {
			sb.WriteString(separator)
		}
	}

	if number >= 100 {
		h := number / 100
		if h == 1 {
			sb.WriteString(hundred)
		} else {
			sb.WriteString(n.name(h))
			sb.WriteString(separator + hundred)
		}

		number %= 100

		// "cents" only when nothing follows and no thousand precedes.
		switch {
		case number == 0 && h > 1 && !hasThousands:
			sb.WriteString("s")
		case number > 0:
			sb.WriteString(separator)
		}
	}

	if number > 0 {
		sb.WriteString(n.belowHundred(int(number)))
	}

	return sb.String()
}

// belowHundred names 1..99.
func (n *Namer) belowHundred(number int) string {
	if number <= 16 {
		return n.units[number]
	}

	ten, unit := number/10, number%10

	if n.dialect == BelgianDialect {
		return n.regular(ten, unit)
	}

	switch ten {
	case 7:
		return n.vigesimal("soixante", unit)
	case 8:
		switch unit {
		case 0:
			return n.tens[8]
		default:
			return "quatre-vingt" + separator + n.units[unit]
		}
	case 9:
		return n.vigesimal("quatre-vingt", unit)
	default:
		return n.regular(ten, unit)
	}
}

// regular names tens with "et" before un: vingt-et-un, septante-et-un.
func (n *Namer) regular(ten, unit int) string {
	switch unit {
	case 0:
		return n.tens[ten]
	case 1:
		return n.tens[ten] + conjunction + n.units[1]
	default:
		return n.tens[ten] + separator + n.units[unit]
	}
}

// vigesimal names 70-79 and 90-99 on top of prefix counting from dix.
func (n *Namer) vigesimal(prefix string, unit int) string {
	switch {
	case unit == 0:
		return prefix + separator + n.units[10]
	case unit == 1 && prefix == "soixante":
		return prefix + conjunction + n.units[11]
	case unit <= 6:
		return prefix + separator + n.units[unit+10]
	default:
		return prefix + separator + n.units[10] + separator + n.units[unit]
	}
}
