package field

import "errors"

// MinPadding is the smallest padding that leaves room for the two border
// columns every ring draws.
const MinPadding = 2

// ErrPadding indicates a padding below MinPadding.
var ErrPadding = errors.New("field: padding below minimum of 2 cells")

// ValidatePadding reports whether p can be used to build a chain.
func ValidatePadding(p int) error {
	if p < MinPadding {
		return ErrPadding
	}
	return nil
}
