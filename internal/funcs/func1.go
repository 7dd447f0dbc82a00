package funcs

import (
	"errors"
	"math"
)

// Increment is the constant Add10 adds to its argument.
const Increment int32 = 10

// ErrOverflow is returned when a result does not fit in an int32.
var ErrOverflow = errors.New("int32 overflow")

// Add10 increments the value v points to by Increment. The caller observes
// the new value after return. On overflow *v is left untouched.
func Add10(v *int32) error {
	if v == nil {
		return errors.New("add10: nil reference")
	}
	sum, err := Add(*v, Increment)
	if err != nil {
		return err
	}
	*v = sum
	return nil
}

// Add returns a + b.
func Add(a, b int32) (int32, error) {
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return 0, ErrOverflow
	}
	return int32(sum), nil
}

// Sub returns a - b.
func Sub(a, b int32) (int32, error) {
	diff := int64(a) - int64(b)
	if diff > math.MaxInt32 || diff < math.MinInt32 {
		return 0, ErrOverflow
	}
	return int32(diff), nil
}
