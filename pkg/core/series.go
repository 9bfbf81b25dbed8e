package core

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Series is an ordered run of comparable column values
// It provides the small set of helpers the chart builders need
type Series[T constraints.Ordered] []T

// Values returns the underlying slice of values
func (s Series[T]) Values() []T {
	return s
}

// Length returns the number of values in the series
func (s Series[T]) Length() int {
	return len(s)
}

// Last returns the value at a specified position from the end
// position 0 is the last value, 1 is the second-to-last, etc.
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// Sorted returns a sorted copy of the series, leaving the receiver untouched
func (s Series[T]) Sorted() Series[T] {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

// NumDecPlaces returns the number of decimal places in a float64
// Used to format numeric keys without trailing noise
func NumDecPlaces(v float64) int64 {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	i := strings.IndexByte(s, '.')
	if i > -1 {
		return int64(len(s) - i - 1)
	}
	return 0
}
