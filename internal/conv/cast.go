package conv

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is wrapped by every error returned from this package.
var ErrOverflow = errors.New("integer overflow")

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", ErrOverflow, v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}

// NarrowUnsigned converts v to the unsigned type T, failing if v does not fit.
func NarrowUnsigned[T constraints.Unsigned](v uint64) (T, error) {
	n := T(v)
	if uint64(n) != v {
		return 0, fmt.Errorf("%w: %d cannot be converted to %T (too large)", ErrOverflow, v, n)
	}
	return n, nil
}

// NarrowSigned converts v to the signed type T, failing if v does not fit.
func NarrowSigned[T constraints.Signed](v int64) (T, error) {
	n := T(v)
	if int64(n) != v {
		return 0, fmt.Errorf("%w: %d cannot be converted to %T (out of range)", ErrOverflow, v, n)
	}
	return n, nil
}

// AddUint64 returns a+b, failing on carry out of 64 bits.
func AddUint64(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w: %d + %d exceeds uint64", ErrOverflow, a, b)
	}
	return sum, nil
}

// AddInt64 returns a+b, failing if the result leaves the int64 range.
func AddInt64(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d exceeds int64", ErrOverflow, a, b)
	}
	return a + b, nil
}
