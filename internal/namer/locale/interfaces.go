package locale

// Namer interface implementation should spell numbers in words of a selected language variant.
type Namer interface {
	// Name should return words for the number or an error if the number cannot be named
	Name(number int64) (string, error)
	// ConvertAll should name every number preserving order and length
	ConvertAll(numbers []int64) ([]string, error)
	// Dialect should return name of the language variant
	Dialect() string
}
